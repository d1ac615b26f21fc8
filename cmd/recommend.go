package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marchenko/lexrec/internal/cache"
	"github.com/marchenko/lexrec/internal/config"
	"github.com/marchenko/lexrec/internal/engine"
	"github.com/marchenko/lexrec/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [personalized|review|adaptive|weakness]",
	Short: "Recommend words to study next",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modeName := "personalized"
		if len(args) == 1 {
			modeName = args[0]
		}
		mode, err := engine.ParseMode(modeName)
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetString("user")
		goalID, _ := cmd.Flags().GetString("goal")
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		bypass, _ := cmd.Flags().GetBool("no-cache")

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := eng.Recommend(cmd.Context(), mode, engine.Request{
			UserID:      userID,
			GoalID:      goalID,
			Count:       count,
			Difficulty:  difficulty,
			BypassCache: bypass,
		})
		if err != nil {
			return err
		}

		printResult(res)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("user", "", "User ID")
	recommendCmd.Flags().String("goal", "", "Goal ID (defaults to the active goal)")
	recommendCmd.Flags().Int("count", 0, "How many words to recommend (0 = mode default)")
	recommendCmd.Flags().String("difficulty", "adaptive", "Difficulty preference: easy, medium, hard, adaptive")
	recommendCmd.Flags().Bool("no-cache", false, "Bypass the result cache")
	_ = recommendCmd.MarkFlagRequired("user")
}

// buildEngine wires the store-backed adapters, cache, and config into
// a ready engine. The caller closes the returned store.
func buildEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	results := cache.NewMemory()
	st.SetCache(results)

	eng, err := engine.New(cfg, engine.Deps{
		Catalog:  st,
		Progress: st,
		Events:   st,
		Goals:    st,
		Cache:    results,
	}, engine.WithLogger(newLogger(cmd)))
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}

func printResult(res *engine.Result) {
	fmt.Printf("strategy: %s  confidence: %.2f\n", res.Strategy, res.Confidence)
	if res.Ability != nil {
		fmt.Printf("level: %s (score %.1f, %.0f%% through level, %.1f points to next)\n",
			res.Ability.Level, res.Ability.Score, res.Ability.LevelProgress, res.Ability.PointsToNext)
	}
	for _, area := range res.FocusAreas {
		fmt.Printf("focus: %s\n", area)
	}
	if len(res.Items) == 0 {
		fmt.Println("no recommendations")
		return
	}
	for i, it := range res.Items {
		fmt.Printf("%2d. %-20s [%s, grade %d]  %.2f  %s\n",
			i+1, it.Word.Text, it.Word.POS, it.Word.Grade, it.Score, it.Reason)
	}
}
