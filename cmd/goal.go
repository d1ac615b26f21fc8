package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marchenko/lexrec/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal <name> <word-id>...",
	Short: "Create a learning goal from a set of words",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		activate, _ := cmd.Flags().GetBool("activate")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		goalID := uuid.NewString()
		name, wordIDs := args[0], args[1:]
		if err := st.CreateGoal(cmd.Context(), goalID, userID, name, wordIDs, activate); err != nil {
			return err
		}
		n, err := st.GoalWordCount(cmd.Context(), goalID)
		if err != nil {
			return err
		}
		fmt.Printf("created goal %q (%s) with %d words\n", name, goalID, n)
		return nil
	},
}

func init() {
	goalCmd.Flags().String("user", "", "User ID the goal belongs to")
	goalCmd.Flags().Bool("activate", true, "Make this the user's active goal")
	_ = goalCmd.MarkFlagRequired("user")
}
