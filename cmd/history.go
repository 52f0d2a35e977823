package cmd

import (
	"fmt"

	"github.com/abhisek/batball/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent rounds, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		_, _, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.RoundRepo().RecentRounds(cmd.Context(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}

		printLines(cmd.OutOrStdout(), renderHistory(recs))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of rounds to list")
	historyCmd.Flags().String("session", "", "Only list rounds from this session ID")
}
