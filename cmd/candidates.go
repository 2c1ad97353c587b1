package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/screening-assistant/internal/logger"
	"github.com/talentscout/screening-assistant/internal/store"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Inspect and manage stored screening records",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all stored screening records",
	Run: func(_ *cobra.Command, _ []string) {
		s, logger := mustStore()

		entries, err := s.ListAll()
		if err != nil {
			logger.Fatal("listing candidates", zap.Error(err))
		}

		pretty, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(pretty))

		logger.Info("stored candidates", zap.Int("count", len(entries)))
	},
}

var candidatesFindCmd = &cobra.Command{
	Use:   "find <email>",
	Short: "Find the first screening record for an email",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		s, logger := mustStore()

		entry, err := s.FindByEmail(args[0])
		if err != nil {
			logger.Fatal("finding candidate", zap.Error(err))
		}

		if entry == nil {
			logger.Info("no record found", zap.String("candidate_id", store.CandidateID(args[0])))
			return
		}

		pretty, _ := json.MarshalIndent(entry, "", "  ")
		fmt.Println(string(pretty))
	},
}

var candidatesDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Erase every screening record for an email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, logger := mustStore()

		if cmd.Flag("auto-aprove").Value.String() == "false" {
			confirm := promptui.Select{
				Label: fmt.Sprintf("Delete all records for %s?", args[0]),
				Items: []string{PromptYes, PromptNo},
			}
			_, action, err := confirm.Run()
			if err != nil || action != PromptYes {
				logger.Info("deletion cancelled")
				return
			}
		}

		removed, err := s.DeleteByEmail(args[0])
		if err != nil {
			logger.Fatal("deleting candidate records", zap.Error(err))
		}

		logger.Info("deletion finished",
			zap.String("candidate_id", store.CandidateID(args[0])),
			zap.Int("removed", removed),
		)
	},
}

func init() {
	candidatesDeleteCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation before deleting")

	candidatesCmd.AddCommand(candidatesListCmd)
	candidatesCmd.AddCommand(candidatesFindCmd)
	candidatesCmd.AddCommand(candidatesDeleteCmd)
	rootCmd.AddCommand(candidatesCmd)
}

func mustStore() (*store.Store, *zap.Logger) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	s, err := store.New(config.DataDir, zl,
		store.WithRetentionMonths(config.RetentionMonths),
	)
	if err != nil {
		zl.Fatal("opening the candidate store", zap.Error(err))
	}

	return s, zl
}
