package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/check-examples/internal/check"
)

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug().Str("file", used).Msg("using config file")
	}

	tally, err := check.Run(cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return fmt.Errorf("check examples: %w", err)
	}

	lastTally = tally
	return nil
}
