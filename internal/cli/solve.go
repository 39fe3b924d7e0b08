package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblesolver/internal/api/response"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
	"github.com/mcoot/scrabblesolver/internal/services/solver"
	"github.com/mcoot/scrabblesolver/internal/storage/memory"
)

// readBoard reads board rows from a file ("-" for stdin). Lines starting with
// '#' are comments and trailing blank lines are ignored.
func readBoard(cmd *cobra.Command, path string, loc *locale.Locale) (*model.BoardState, error) {
	if path == "" {
		return model.NewBoardStateFor(loc.Layout), nil
	}

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	state, err := model.ParseBoardState(rows, loc.Layout.Width(), loc.Layout.Height())
	if err != nil {
		return nil, err
	}
	if err := loc.CheckBoard(state); err != nil {
		return nil, err
	}
	return state, nil
}

// offlineSolver loads the word list for the locale and returns a solver
// without a result cache
func offlineSolver(cmd *cobra.Command, loc *locale.Locale, dictPath string) (*solver.Service, error) {
	log := logger(cmd)
	dicts := dictionary.NewService(memory.New(), log)

	var paths []string
	if dictPath != "" {
		paths = []string{dictPath}
	} else {
		if cfg.DictionaryDir != "" {
			paths = append(paths, filepath.Join(cfg.DictionaryDir, loc.Code+".txt"))
		}
		paths = append(paths, loc.Dictionary.SearchPaths()...)
	}
	if err := dicts.LoadFromFile(cmd.Context(), loc, paths...); err != nil {
		return nil, err
	}
	return solver.New(dicts, nil, log), nil
}

func newSolveCmd() *cobra.Command {
	var (
		localeCode string
		boardPath  string
		dictPath   string
		racks      []string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Rank every placement playable from one or more racks",
		Example: `  scrabblesolver solve --locale it --rack "CASA*"
  scrabblesolver solve --locale en --board board.txt --rack RETAINS --rack "QU*ZZ" --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(racks) == 0 {
				return fmt.Errorf("at least one --rack is required")
			}
			loc, err := locale.MustBuiltin().Get(localeCode)
			if err != nil {
				return err
			}
			state, err := readBoard(cmd, boardPath, loc)
			if err != nil {
				return err
			}
			svc, err := offlineSolver(cmd, loc, dictPath)
			if err != nil {
				return err
			}

			normalized := lo.Map(racks, func(r string, _ int) model.Rack {
				return model.NormalizeRack(r, loc.Alphabet, loc.RackSize)
			})

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			if len(normalized) == 1 {
				placements, err := svc.Solve(cmd.Context(), loc, state, normalized[0], limit)
				if err != nil {
					return err
				}
				out.Print(response.SolveResponse{
					Rack:       normalized[0].String(),
					Placements: response.PlacementsFromModel(placements),
				})
				return nil
			}

			results, err := svc.SolveMany(cmd.Context(), loc, state, normalized, limit)
			if err != nil {
				return err
			}
			out.Print(lo.Map(results, func(ps []model.Placement, i int) response.SolveResponse {
				return response.SolveResponse{
					Rack:       normalized[i].String(),
					Placements: response.PlacementsFromModel(ps),
				}
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&localeCode, "locale", "l", "it", "Locale code")
	cmd.Flags().StringVarP(&boardPath, "board", "b", "", "Board file, one row per line ('-' for stdin, empty board if unset)")
	cmd.Flags().StringVarP(&dictPath, "dict", "d", "", "Word list file (default: <dict-dir>/<locale>.txt, then the locale's paths)")
	cmd.Flags().StringArrayVarP(&racks, "rack", "r", nil, "Rack tiles, '*' for a wildcard (repeatable)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum placements per rack (0 for all)")

	return cmd
}

func newScoreCmd() *cobra.Command {
	var (
		localeCode string
		boardPath  string
		rack       string
		word       string
		row        int
		col        int
		vertical   bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single placement",
		Example: `  scrabblesolver score --locale en --rack "CAT*" --word CAT --row 7 --col 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if word == "" {
				return fmt.Errorf("--word is required")
			}
			loc, err := locale.MustBuiltin().Get(localeCode)
			if err != nil {
				return err
			}
			state, err := readBoard(cmd, boardPath, loc)
			if err != nil {
				return err
			}

			o := model.Horizontal
			if vertical {
				o = model.Vertical
			}
			svc := solver.New(dictionary.NewService(memory.New(), logger(cmd)), nil, logger(cmd))
			p, err := svc.Score(loc, state,
				model.NormalizeRack(rack, loc.Alphabet, loc.RackSize),
				model.NewRack(word).String(),
				model.Position{Row: row, Col: col}, o)
			if err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(response.PlacementFromModel(p))
			return nil
		},
	}

	cmd.Flags().StringVarP(&localeCode, "locale", "l", "it", "Locale code")
	cmd.Flags().StringVarP(&boardPath, "board", "b", "", "Board file, one row per line ('-' for stdin)")
	cmd.Flags().StringVarP(&rack, "rack", "r", "", "Rack tiles, '*' for a wildcard")
	cmd.Flags().StringVarP(&word, "word", "w", "", "Word to place")
	cmd.Flags().IntVar(&row, "row", 0, "Row of the first letter")
	cmd.Flags().IntVar(&col, "col", 0, "Column of the first letter")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Place the word top to bottom")

	return cmd
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales [code]",
		Short: "List the built-in locales, or show one in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := locale.MustBuiltin()
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if len(args) == 1 {
				loc, err := registry.Get(args[0])
				if err != nil {
					return err
				}
				out.Print(response.LocaleFromModel(loc))
				return nil
			}

			out.Print(lo.Map(registry.List(), func(l *locale.Locale, _ int) response.LocaleSummary {
				return response.LocaleSummaryFromModel(l)
			}))
			return nil
		},
	}
}
