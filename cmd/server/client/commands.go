package client

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-saga/internal/handlers/api/v1alpha1"
)

var (
	startName  string
	decisionID string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

var timelineCmd = &cobra.Command{
	Use:   "timeline <session-id>",
	Short: "Show the session's timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimeline,
}

var eventCmd = &cobra.Command{
	Use:   "event <session-id> <event-id>",
	Short: "Open an event and list its decisions",
	Args:  cobra.ExactArgs(2),
	RunE:  runEvent,
}

var decideCmd = &cobra.Command{
	Use:   "decide <session-id> <event-id>",
	Short: "Make a decision for an event",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecide,
}

var characterCmd = &cobra.Command{
	Use:   "character <session-id>",
	Short: "Show the protagonist",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharacter,
}

var historyCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "List the decisions made so far",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	startCmd.Flags().StringVar(&startName, "name", "", "Protagonist name (defaults to the server's)")
	decideCmd.Flags().StringVar(&decisionID, "decision", "", "Decision ID (required)")
	_ = decideCmd.MarkFlagRequired("decision") // nolint:errcheck // safe to ignore in init
}

func runStart(cmd *cobra.Command, _ []string) error {
	var resp apiv1alpha1.StartSessionResponse
	if err := call(http.MethodPost, "/api/v1/sessions", apiv1alpha1.StartSessionRequest{Name: startName}, &resp); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Session: %s\n\n", resp.SessionID)
	printCharacter(w, resp.Character)
	return nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	var resp apiv1alpha1.TimelineResponse
	if err := call(http.MethodGet, sessionPath(args[0], "timeline"), nil, &resp); err != nil {
		return fmt.Errorf("failed to get timeline: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Progress: %d%% (%d/%d)  Current era: %s\n",
		resp.Progress, resp.CompletedEvents, resp.TotalEvents, resp.CurrentEra)
	for _, era := range resp.Eras {
		fmt.Fprintf(w, "\n%s\n", era.DisplayName)
		for _, e := range era.Events {
			fmt.Fprintf(w, "  [%-9s] %s (%s)\n", e.Status, e.Title, e.ID)
		}
	}
	if resp.JourneyComplete {
		fmt.Fprintf(w, "\nThe journey is complete.\n")
	}
	return nil
}

func runEvent(cmd *cobra.Command, args []string) error {
	var resp apiv1alpha1.GetEventResponse
	if err := call(http.MethodGet, sessionPath(args[0], "events", args[1]), nil, &resp); err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n%s\n\n", resp.Event.Title, resp.Event.EraDisplayName, resp.Event.Description)
	for _, d := range resp.Decisions {
		fmt.Fprintf(w, "  %d. %s [%s]\n", d.DisplayOrder, d.Text, d.ID)
	}
	return nil
}

func runDecide(cmd *cobra.Command, args []string) error {
	var resp apiv1alpha1.ProcessDecisionResponse
	body := apiv1alpha1.ProcessDecisionRequest{DecisionID: decisionID}
	if err := call(http.MethodPost, sessionPath(args[0], "events", args[1], "decisions"), body, &resp); err != nil {
		return fmt.Errorf("failed to process decision: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n\n", resp.Narrative.Text)
	printCharacter(w, resp.Character)
	if resp.Progression.TitleChanged {
		fmt.Fprintf(w, "\nTitle changed: %s -> %s\n", resp.PreviousTitleDisplayName, resp.Character.TitleDisplayName)
	}
	if resp.Progression.TriggeredFall {
		fmt.Fprintf(w, "The fall has begun.\n")
	}
	if resp.Progression.TriggeredRedemption {
		fmt.Fprintf(w, "A path to redemption has opened.\n")
	}
	return nil
}

func runCharacter(cmd *cobra.Command, args []string) error {
	var resp apiv1alpha1.CharacterResponse
	if err := call(http.MethodGet, sessionPath(args[0], "character"), nil, &resp); err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	w := cmd.OutOrStdout()
	printCharacter(w, resp.Character)
	fmt.Fprintf(w, "\nDecisions: %d (light %d, dark %d)\n",
		resp.Stats.DecisionsCount, resp.Stats.LightDecisions, resp.Stats.DarkDecisions)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	var resp apiv1alpha1.HistoryResponse
	if err := call(http.MethodGet, sessionPath(args[0], "history"), nil, &resp); err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	w := cmd.OutOrStdout()
	for _, e := range resp.Entries {
		fmt.Fprintf(w, "%s: %s (%+d, %s)\n", e.EventTitle, e.DecisionText, e.Shift, e.Alignment)
	}
	s := resp.Summary
	fmt.Fprintf(w, "\n%d decisions, average shift %.2f, tendency %s\n", s.TotalDecisions, s.AverageShift, s.OverallTendency)
	return nil
}
