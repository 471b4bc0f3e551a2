// Command gamma-cli is a terminal client for the Polymarket Gamma API:
// sports, teams, tags, and tag relationships, printed as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	gammasdk "github.com/GoPolymarket/gamma-go-sdk"
	sdkerrors "github.com/GoPolymarket/gamma-go-sdk/pkg/errors"
	"github.com/GoPolymarket/gamma-go-sdk/pkg/gamma"
	"github.com/GoPolymarket/gamma-go-sdk/pkg/logger"
)

type cliOptions struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "gamma-cli",
		Short:        "Explore Polymarket Gamma metadata: sports, teams, and tags",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				return logger.Init("debug", true)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "override the Gamma API endpoint")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newStatusCmd(opts),
		newSportsCmd(opts),
		newMarketTypesCmd(opts),
		newTeamsCmd(opts),
		newTagsCmd(opts),
		newTagCmd(opts),
		newRelatedCmd(opts),
	)
	return root
}

// client builds the Gamma client from the environment, the --base-url flag
// taking precedence over GAMMA_BASE_URL.
func (o *cliOptions) client() (gamma.Client, error) {
	cfg, err := gammasdk.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		cfg.BaseURLs.Gamma = o.baseURL
	}
	c, err := gammasdk.NewClientE(gammasdk.WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	return c.Gamma, nil
}

func (o *cliOptions) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, o.timeout)
}

func newStatusCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check Gamma service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			status, err := client.Status(ctx)
			if err != nil {
				return err
			}
			fmt.Println(status)
			return nil
		},
	}
}

func newSportsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sports",
		Short: "List supported sport categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			sports, err := client.Sports(ctx)
			if err != nil {
				return err
			}
			return printJSON(sports)
		},
	}
}

func newMarketTypesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "market-types",
		Short: "List sports market types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			types, err := client.SportsMarketTypes(ctx)
			if err != nil {
				return err
			}
			return printJSON(types)
		},
	}
}

func newTeamsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams referenced by sports markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			leagues, _ := cmd.Flags().GetStringSlice("league")
			teams, err := client.Teams(ctx, &gamma.TeamsRequest{
				Limit:     intFlag(cmd, "limit"),
				Offset:    intFlag(cmd, "offset"),
				Order:     stringFlag(cmd, "order"),
				Ascending: boolFlag(cmd, "ascending"),
				League:    leagues,
			})
			if err != nil {
				return err
			}
			return printJSON(teams)
		},
	}
	cmd.Flags().Int("limit", 0, "maximum number of teams")
	cmd.Flags().Int("offset", 0, "pagination offset")
	cmd.Flags().String("order", "", "sort field")
	cmd.Flags().Bool("ascending", false, "sort ascending")
	cmd.Flags().StringSlice("league", nil, "filter by league (repeatable)")
	return cmd
}

func newTagsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List market tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			tags, err := client.Tags(ctx, &gamma.TagsRequest{
				Limit:           intFlag(cmd, "limit"),
				Offset:          intFlag(cmd, "offset"),
				Order:           stringFlag(cmd, "order"),
				Ascending:       boolFlag(cmd, "ascending"),
				IncludeTemplate: boolFlag(cmd, "include-template"),
				IsCarousel:      boolFlag(cmd, "carousel"),
			})
			if err != nil {
				return err
			}
			return printJSON(tags)
		},
	}
	cmd.Flags().Int("limit", 0, "maximum number of tags")
	cmd.Flags().Int("offset", 0, "pagination offset")
	cmd.Flags().String("order", "", "sort field")
	cmd.Flags().Bool("ascending", false, "sort ascending")
	cmd.Flags().Bool("include-template", false, "include template metadata")
	cmd.Flags().Bool("carousel", false, "only carousel tags")
	return cmd
}

func newTagCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <id|slug>",
		Short: "Fetch one tag by ID, or by slug with --slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			includeTemplate := boolFlag(cmd, "include-template")
			bySlug, _ := cmd.Flags().GetBool("slug")

			var tag *gamma.Tag
			if bySlug {
				tag, err = client.TagBySlug(ctx, &gamma.TagBySlugRequest{
					Slug:            args[0],
					IncludeTemplate: includeTemplate,
				})
			} else {
				tag, err = client.TagByID(ctx, &gamma.TagByIDRequest{
					ID:              args[0],
					IncludeTemplate: includeTemplate,
				})
			}
			if sdkerrors.IsNotFound(err) {
				return fmt.Errorf("tag %q not found", args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(tag)
		},
	}
	cmd.Flags().Bool("slug", false, "treat the argument as a slug")
	cmd.Flags().Bool("include-template", false, "include template metadata")
	return cmd
}

func newRelatedCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related <id|slug>",
		Short: "List tags related to a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx, cancel := opts.requestContext(cmd)
			defer cancel()

			bySlug, _ := cmd.Flags().GetBool("slug")
			edges, _ := cmd.Flags().GetBool("edges")
			omitEmpty := boolFlag(cmd, "omit-empty")
			status := stringFlag(cmd, "status")

			var result any
			switch {
			case edges && bySlug:
				result, err = client.RelatedTagsBySlug(ctx, &gamma.RelatedTagsBySlugRequest{Slug: args[0], OmitEmpty: omitEmpty, Status: status})
			case edges:
				result, err = client.RelatedTagsByID(ctx, &gamma.RelatedTagsByIDRequest{ID: args[0], OmitEmpty: omitEmpty, Status: status})
			case bySlug:
				result, err = client.TagsRelatedToTagBySlug(ctx, &gamma.RelatedTagsBySlugRequest{Slug: args[0], OmitEmpty: omitEmpty, Status: status})
			default:
				result, err = client.TagsRelatedToTagByID(ctx, &gamma.RelatedTagsByIDRequest{ID: args[0], OmitEmpty: omitEmpty, Status: status})
			}
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().Bool("slug", false, "treat the argument as a slug")
	cmd.Flags().Bool("edges", false, "print raw relationship records instead of resolved tags")
	cmd.Flags().Bool("omit-empty", false, "drop relationships without active markets")
	cmd.Flags().String("status", "", "filter by tag status")
	return cmd
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// Flag helpers translate "flag not passed" into nil so optional query
// parameters stay absent unless the user asked for them.

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
