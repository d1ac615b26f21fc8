package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marchenko/lexrec/internal/store"
)

var recordCmd = &cobra.Command{
	Use:   "record <word-id>",
	Short: "Record a study result for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		sessionID, _ := cmd.Flags().GetString("session")
		correct, _ := cmd.Flags().GetBool("correct")
		responseTime, _ := cmd.Flags().GetFloat64("time")

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.RecordResult(cmd.Context(), userID, args[0], sessionID, correct, responseTime); err != nil {
			return err
		}
		fmt.Printf("recorded %s correct=%v session=%s\n", args[0], correct, sessionID)
		return nil
	},
}

func init() {
	recordCmd.Flags().String("user", "", "User ID")
	recordCmd.Flags().String("session", "", "Session ID (generated when empty)")
	recordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	recordCmd.Flags().Float64("time", 0, "Response time in seconds")
	_ = recordCmd.MarkFlagRequired("user")
}
