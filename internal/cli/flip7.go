package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/scorekeeper/internal/api/request"
	"github.com/mcoot/scorekeeper/internal/api/response"
)

const flip7GamesPath = "/api/v1/flip7/games"

func newFlip7Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip7",
		Short: "Flip 7 games",
	}

	cmd.AddCommand(newFlip7CreateCmd())
	cmd.AddCommand(newFlip7ListCmd())
	cmd.AddCommand(newFlip7GetCmd())
	cmd.AddCommand(newFlip7DeleteCmd())
	cmd.AddCommand(newFlip7RoundCmd())

	return cmd
}

func newFlip7CreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name|id=name>...",
		Short: "Start a new Flip 7 game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Flip7Game

			req := request.CreateGameRequest{Players: playersFromArgs(args)}
			if err := client.Post(cmd.Context(), flip7GamesPath, req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newFlip7ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Flip 7 games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Flip7Summary

			if err := client.Get(cmd.Context(), flip7GamesPath, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newFlip7GetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a Flip 7 game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Flip7Game

			if err := client.Get(cmd.Context(), fmt.Sprintf("%s/%s", flip7GamesPath, args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newFlip7DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a Flip 7 game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), fmt.Sprintf("%s/%s", flip7GamesPath, args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}

func newFlip7RoundCmd() *cobra.Command {
	var scores []string

	cmd := &cobra.Command{
		Use:   "round <game-id>",
		Short: "Record a round of scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseScores(scores)
			if err != nil {
				return err
			}

			var req request.Flip7RoundRequest
			for _, s := range parsed {
				req.Players = append(req.Players, request.Flip7RoundEntry{ID: s.id, Score: s.score})
			}

			var result response.Flip7Game
			if err := client.Post(cmd.Context(), fmt.Sprintf("%s/%s/rounds", flip7GamesPath, args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&scores, "score", "s", nil, "Player score as <player-id>=<score> (repeatable)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
