// petrel
// (C) 2024, Deutsche Telekom IT GmbH
//
// Deutsche Telekom IT GmbH and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package cmd

import (
	"context"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petrel-team/petrel/internal/helper"
	"github.com/petrel-team/petrel/internal/httpclient"
	"github.com/petrel-team/petrel/internal/logger"
	"github.com/petrel-team/petrel/pkg/checker"
	"github.com/petrel-team/petrel/pkg/config"
	"github.com/petrel-team/petrel/pkg/report"
	"github.com/petrel-team/petrel/pkg/targets"
)

// listTimeout bounds the fetch of a remote target list
const listTimeout = 30 * time.Second

// NewCmdRun creates a new run command
func NewCmdRun() *cobra.Command {
	fm := config.RunFlagsNameMapping{
		TargetsFile:  "file",
		TargetsToken: "token",
		Timeout:      "timeout",
		Retries:      "retries",
		Workers:      "workers",
		Backoff:      "backoff",
		Output:       "output",
		Format:       "format",
	}

	cmd := &cobra.Command{
		Use:   "run [url ...]",
		Short: "Run one endpoint sweep",
		Long: "Petrel checks every target once, with bounded retries and a per-attempt timeout,\n" +
			"and writes the report in the order the targets were supplied.",
		Args: cobra.ArbitraryArgs,
		RunE: run(&fm),
	}

	NewFlag(fm.TargetsFile, fm.TargetsFile).StringP("f").Bind(cmd, "",
		"path or http(s) url of a target list; blank lines and # comments are ignored")
	NewFlag(fm.TargetsToken, fm.TargetsToken).String().Bind(cmd, "",
		"bearer token sent when the target list is fetched from a url")
	NewFlag(fm.Timeout, fm.Timeout).String().Bind(cmd, "5s",
		"per-attempt timeout, either in seconds or as a duration like 1.5s")
	NewFlag(fm.Retries, fm.Retries).Int().Bind(cmd, 3,
		"number of retries after the first attempt")
	NewFlag(fm.Workers, fm.Workers).Int().Bind(cmd, runtime.NumCPU(),
		"worker pool size")
	NewFlag(fm.Backoff, fm.Backoff).String().Bind(cmd, "500ms",
		"base delay between attempts of one target, doubled per further attempt")
	NewFlag(fm.Output, fm.Output).StringP("o").Bind(cmd, "status_output.txt",
		"report file path, - for stdout")
	NewFlag(fm.Format, fm.Format).String().Bind(cmd, config.FormatText,
		"report format: text, json or yaml")

	viper.SetEnvPrefix("petrel")
	viper.AutomaticEnv()

	return cmd
}

// run is the entry point of one sweep
func run(fm *config.RunFlagsNameMapping) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logger.NewLogger()
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logger.IntoContext(ctx, log)

		cfg, err := buildConfig(ctx, fm, args)
		if err != nil {
			log.Error("Error while validating the config", "error", err)
			return err
		}

		urls, err := loadTargets(ctx, cfg)
		if err != nil {
			log.Error("Error while loading the targets", "error", err)
			return err
		}
		if len(urls) == 0 {
			log.Error("All target sources together are empty")
			return targets.ErrNoTargets
		}

		pool, err := checker.New(checker.Config{
			Workers: cfg.Workers,
			Timeout: cfg.Timeout,
			Retries: cfg.Retries,
			Backoff: cfg.Backoff,
		})
		if err != nil {
			return err
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(pool.GetMetricCollectors()...)

		ctx = httpclient.IntoContext(ctx, httpclient.New())

		log.Info("Running sweep", "targets", len(urls), "workers", cfg.Workers)
		rep, err := pool.Run(ctx, urls)
		if err != nil {
			log.Error("Error while running the sweep", "error", err)
			return err
		}

		if err := report.Write(ctx, cfg.Output, cfg.Format, rep); err != nil {
			log.Error("Error while writing the report", "error", err)
			return err
		}

		if mfs, gerr := registry.Gather(); gerr == nil {
			log.Debug("Collected metrics", "families", len(mfs))
		}

		log.Info("Sweep finished", "targets", len(urls), "failed", rep.FailedCount())
		return nil
	}
}

// buildConfig assembles and validates the run configuration from viper
func buildConfig(ctx context.Context, fm *config.RunFlagsNameMapping, args []string) (*config.Config, error) {
	timeout, err := config.ParseFlexibleDuration(viper.GetString(fm.Timeout))
	if err != nil {
		return nil, err
	}
	backoff, err := config.ParseFlexibleDuration(viper.GetString(fm.Backoff))
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfig()
	cfg.SetTargetsFile(viper.GetString(fm.TargetsFile))
	cfg.SetTargetsToken(viper.GetString(fm.TargetsToken))
	cfg.SetTimeout(timeout)
	cfg.SetRetries(viper.GetInt(fm.Retries))
	cfg.SetWorkers(viper.GetInt(fm.Workers))
	cfg.SetBackoff(backoff)
	cfg.SetOutput(viper.GetString(fm.Output))
	cfg.SetFormat(viper.GetString(fm.Format))
	cfg.SetTargets(args)

	if err := cfg.Validate(ctx, fm); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTargets merges the file or remote source with the positional urls and
// removes duplicates, keeping the order in which targets were supplied
func loadTargets(ctx context.Context, cfg *config.Config) ([]string, error) {
	var listed []string
	if cfg.TargetsFile != "" {
		var err error
		if targets.IsRemote(cfg.TargetsFile) {
			hl := targets.NewHTTPLoader(cfg.TargetsFile, cfg.TargetsToken, listTimeout, helper.RetryConfig{
				Count: 3,
				Delay: time.Second,
			})
			listed, err = hl.Load(ctx)
		} else {
			listed, err = targets.FromFile(ctx, cfg.TargetsFile)
		}
		if err != nil {
			return nil, err
		}
	}
	return targets.Merge(listed, cfg.Targets), nil
}
