package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tbourn/go-discovery-backend/internal/dataset"
	"github.com/tbourn/go-discovery-backend/internal/domain"
	"github.com/tbourn/go-discovery-backend/internal/search"
	"github.com/tbourn/go-discovery-backend/internal/services"
	"github.com/tbourn/go-discovery-backend/internal/sysutil"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// resultRow is the flattened view of a result used by the table and yaml
// outputs.
type resultRow struct {
	Type          domain.Kind `yaml:"type"`
	ID            string      `yaml:"id"`
	Label         string      `yaml:"label"`
	Confidence    int         `yaml:"confidence"`
	Matched       []string    `yaml:"matched"`
	Justification string      `yaml:"justification"`
}

type yamlOutput struct {
	Query   string      `yaml:"query"`
	Terms   []string    `yaml:"terms"`
	Total   int         `yaml:"total"`
	Results []resultRow `yaml:"results"`
}

func newSearchCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Run one search and print the ranked results",
		Long: `search loads the dataset from --dataset-url (or DATASET_URL), falling back to
the built-in dataset when it is unset or unreachable, and prints the results
for the query.

Flags may also be set as DISCOVERY_<FLAG> environment variables, e.g.
DISCOVERY_FORMAT=json.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), v, strings.Join(args, " "), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.String("dataset-url", "", "dataset JSON endpoint (default $DATASET_URL, else built-in)")
	f.String("format", formatTable, "output format: table, json or yaml")
	f.StringSlice("type", nil, "keep only these record types (faculty, paper, patent, project)")
	f.Int("limit", 10, "maximum results; 0 for all")
	f.Duration("timeout", dataset.DefaultTimeout, "dataset fetch timeout")
	f.String("log-level", "warn", "log level for diagnostics on stderr")

	v.SetEnvPrefix("DISCOVERY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(f)
	return cmd
}

func runSearch(ctx context.Context, v *viper.Viper, query string, out, errOut io.Writer) error {
	format := strings.ToLower(strings.TrimSpace(v.GetString("format")))
	switch format {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}

	logger := sysutil.SetupLogger(v.GetString("log-level"), false, errOut)
	if ctx == nil {
		ctx = context.Background()
	}

	provider := dataset.NewProvider(dataset.Options{
		URL:      strings.TrimSpace(sysutil.FirstNonEmpty(v.GetString("dataset-url"), os.Getenv("DATASET_URL"))),
		Timeout:  v.GetDuration("timeout"),
		CacheTTL: -1,
		Logger:   &logger,
	})
	store := dataset.NewStore(provider)
	info := store.Load(ctx)
	logger.Debug().Str("source", string(info.Source)).Int("total", info.Total).Msg("dataset loaded")

	svc := services.NewSearchService(nil, search.NewEngine(store))
	svc.Log = logger
	svc.MaxResults = 0

	resp, err := svc.Search(ctx, services.Query{
		Text:  query,
		Kinds: v.GetStringSlice("type"),
		Limit: v.GetInt("limit"),
	})
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(yamlOutput{Query: resp.Query, Terms: resp.Terms, Total: resp.Total, Results: rows(resp.Results)}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(out, resp, info)
	}
}

func rows(results []domain.SearchResult) []resultRow {
	out := make([]resultRow, 0, len(results))
	for _, r := range results {
		out = append(out, resultRow{
			Type:          r.Type,
			ID:            string(r.Data.RecordID()),
			Label:         label(r.Data),
			Confidence:    r.Confidence,
			Matched:       r.MatchedKeywords,
			Justification: r.AIJustification,
		})
	}
	return out
}

// label is the human name of a record: a faculty member's name, otherwise
// the title.
func label(rec domain.Record) string {
	switch v := rec.(type) {
	case domain.Faculty:
		return v.Name
	case domain.Paper:
		return v.Title
	case domain.Patent:
		return v.Title
	case domain.Project:
		return v.Title
	default:
		return ""
	}
}

func writeTable(out io.Writer, resp *services.SearchResponse, info dataset.Info) error {
	fmt.Fprintf(out, "%d of %d results for %q (dataset: %s, %s)\n",
		len(resp.Results), resp.Total, resp.Query, info.Source, info.LoadedAt.Format(time.RFC3339))
	if len(resp.Results) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONF\tTYPE\tID\tNAME\tMATCHED")
	for _, r := range rows(resp.Results) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Confidence, r.Type, r.ID, r.Label, strings.Join(r.Matched, ", "))
	}
	return tw.Flush()
}
