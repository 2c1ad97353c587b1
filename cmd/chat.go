package cmd

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/screening-assistant/internal/conversation"
	"github.com/talentscout/screening-assistant/internal/logger"
	"github.com/talentscout/screening-assistant/internal/questions"
	"github.com/talentscout/screening-assistant/internal/store"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	// transcriptLogLimit keeps user input readable in debug logs.
	transcriptLogLimit = 80
)

var errExit = errors.New("exit requested")

var restartPrompt = promptui.Select{
	Label: "Start a new conversation?",
	Items: []string{PromptYes, PromptNo},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive screening conversation",
	Run: func(_ *cobra.Command, _ []string) {
		chat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// chat wires the core together and feeds it one line of user text per turn.
// All conversation logic lives behind Machine.HandleTurn; this loop only
// renders strings.
func chat() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the screening assistant",
		zap.String("version", version),
		zap.String("data_dir", config.DataDir),
		zap.Int("questions", config.Questions),
	)

	recorder, err := store.New(config.DataDir, logger,
		store.WithRetentionMonths(config.RetentionMonths),
	)
	if err != nil {
		logger.Fatal("opening the candidate store", zap.Error(err))
	}

	selector := questions.NewSelector(rand.NewSource(time.Now().UnixNano()))
	machine := conversation.New(selector, recorder, logger, config.Questions)

	for {
		if err := runSession(machine, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		_, action, err := restartPrompt.Run()
		if err != nil || action == PromptNo {
			return
		}
	}
}

// runSession drives a single conversation from greeting to closing.
func runSession(machine *conversation.Machine, logger *zap.Logger) error {
	session := conversation.NewSession()

	logger.Debug("session started", zap.String("session_id", session.ID))

	// The first turn has no user input and yields the greeting.
	fmt.Println(machine.HandleTurn(session, ""))
	fmt.Println()

	input := promptui.Prompt{Label: "You"}

	for session.Active {
		line, err := input.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return errExit
			}
			return fmt.Errorf("reading input: %w", err)
		}

		logger.Debug("user turn",
			zap.String("session_id", session.ID),
			zap.String("stage", session.Stage.String()),
			zap.String("input", truncateInput(line)),
		)

		fmt.Println()
		fmt.Println(machine.HandleTurn(session, line))
		fmt.Println()
	}

	if summary := session.Record.Summary(); summary != "" {
		fmt.Println("Information collected:")
		fmt.Println(summary)
		fmt.Println()
	}

	return nil
}

func truncateInput(s string) string {
	return logger.TruncateForLog(s, transcriptLogLimit)
}
