package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/scorekeeper/internal/api/request"
	"github.com/mcoot/scorekeeper/internal/api/response"
)

const everdellGamesPath = "/api/v1/everdell/games"

func newEverdellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "everdell",
		Short: "Everdell score sheets",
	}

	cmd.AddCommand(newEverdellCreateCmd())
	cmd.AddCommand(newEverdellListCmd())
	cmd.AddCommand(newEverdellGetCmd())
	cmd.AddCommand(newEverdellDeleteCmd())
	cmd.AddCommand(newEverdellScoreCmd())
	cmd.AddCommand(newEverdellRowsCmd())

	return cmd
}

func newEverdellCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name|id=name>...",
		Short: "Start a new Everdell game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.EverdellGame

			req := request.CreateGameRequest{Players: playersFromArgs(args)}
			if err := client.Post(cmd.Context(), everdellGamesPath, req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newEverdellListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Everdell games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.EverdellGame

			if err := client.Get(cmd.Context(), everdellGamesPath, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newEverdellGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show an Everdell game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.EverdellGame

			if err := client.Get(cmd.Context(), fmt.Sprintf("%s/%s", everdellGamesPath, args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newEverdellDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete an Everdell game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), fmt.Sprintf("%s/%s", everdellGamesPath, args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}

func newEverdellScoreCmd() *cobra.Command {
	var (
		module    string
		component string
		scores    []string
	)

	cmd := &cobra.Command{
		Use:   "score <game-id>",
		Short: "Set one component's score for some or all players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseScores(scores)
			if err != nil {
				return err
			}

			// The API wants each player's name alongside the score
			gamePath := fmt.Sprintf("%s/%s", everdellGamesPath, args[0])
			var game response.EverdellGame
			if err := client.Get(cmd.Context(), gamePath, &game); err != nil {
				return err
			}
			nameByID := make(map[string]string, len(game.Players))
			for _, p := range game.Players {
				nameByID[p.ID] = p.Name
			}

			req := request.EverdellScoreRequest{Module: module, Component: component}
			for _, s := range parsed {
				req.Players = append(req.Players, request.EverdellScoreEntry{
					PlayerID: s.id,
					Name:     nameByID[s.id],
					Score:    s.score,
				})
			}

			var result response.EverdellGame
			if err := client.Post(cmd.Context(), gamePath+"/scores", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "base", "Module the component belongs to")
	cmd.Flags().StringVar(&component, "component", "", "Component to score (cards, prosperity, events, journey, tokens)")
	cmd.Flags().StringArrayVarP(&scores, "score", "s", nil, "Player score as <player-id>=<score> (repeatable)")
	_ = cmd.MarkFlagRequired("component")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newEverdellRowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows <game-id>",
		Short: "Show an Everdell score sheet one component per row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.ScoreRow

			if err := client.Get(cmd.Context(), fmt.Sprintf("%s/%s/rows", everdellGamesPath, args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
