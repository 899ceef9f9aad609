package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/scorekeeper/internal/api/request"
	"github.com/mcoot/scorekeeper/internal/api/response"
)

const phase10GamesPath = "/api/v1/phase10/games"

func newPhase10Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase10",
		Short: "Phase 10 games",
	}

	cmd.AddCommand(newPhase10CreateCmd())
	cmd.AddCommand(newPhase10ListCmd())
	cmd.AddCommand(newPhase10GetCmd())
	cmd.AddCommand(newPhase10DeleteCmd())
	cmd.AddCommand(newPhase10RoundCmd())
	cmd.AddCommand(newPhase10PhaseCmd())

	return cmd
}

func newPhase10CreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name|id=name>...",
		Short: "Start a new Phase 10 game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Phase10Game

			req := request.CreateGameRequest{Players: playersFromArgs(args)}
			if err := client.Post(cmd.Context(), phase10GamesPath, req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPhase10ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Phase 10 games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Phase10Game

			if err := client.Get(cmd.Context(), phase10GamesPath, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPhase10GetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a Phase 10 game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Phase10Game

			if err := client.Get(cmd.Context(), fmt.Sprintf("%s/%s", phase10GamesPath, args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPhase10DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a Phase 10 game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), fmt.Sprintf("%s/%s", phase10GamesPath, args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}

func newPhase10RoundCmd() *cobra.Command {
	var results []string

	cmd := &cobra.Command{
		Use:   "round <game-id>",
		Short: "Record a round of results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := parsePhase10Results(results)
			if err != nil {
				return err
			}

			var result response.Phase10Game
			req := request.Phase10RoundRequest{Players: entries}
			if err := client.Post(cmd.Context(), fmt.Sprintf("%s/%s/rounds", phase10GamesPath, args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&results, "result", "r", nil, "Player result as <player-id>=<phase>:<score> (repeatable)")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}

func newPhase10PhaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phase <number>",
		Short: "Describe a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PhaseDetails

			if err := client.Get(cmd.Context(), "/api/v1/phase10/phases/"+args[0], &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
