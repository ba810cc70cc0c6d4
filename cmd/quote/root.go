package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/domain/dto"
	"github.com/guttosm/laundry-pricing/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"resty.dev/v3"
)

// exampleOrder is the reference order from the shop's price sheet.
const exampleOrder = `{"variable_piece": 15, "shirt": 8, "towel_or_sheet": 5, "duvet_cover": 2}`

// errReported marks failures already written to stdout as a JSON result.
var errReported = errors.New("quote failed")

type options struct {
	example bool
	order   string
	catalog string
	server  string
	apiKey  string
	timeout time.Duration
	verbose bool
}

// result is what the command prints.
type result struct {
	Status    string          `json:"status"`
	TotalCost json.RawMessage `json:"total_cost,omitempty"`
	Breakdown json.RawMessage `json:"breakdown,omitempty"`
	Message   string          `json:"message,omitempty"`
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a laundry order at the lowest total cost",
		Example: `  quote --example
  quote --json '{"shirt": 8, "blazer": 1}'
  quote --json '{"items": {"shirt": 8}}' --server http://localhost:8080`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			res := run(cmd.Context(), opts)
			if err := writeResult(out, res); err != nil {
				return err
			}
			if res.Status != "success" {
				return errReported
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.example, "example", false, "price the reference order (15 pieces, 8 shirts, 5 towels, 2 duvet covers)")
	f.StringVar(&opts.order, "json", "", "order as a JSON object of item quantities")
	f.StringVar(&opts.catalog, "catalog", "", "price catalog file (YAML or JSON); defaults to the embedded catalog")
	f.StringVar(&opts.server, "server", "", "base URL of a running pricing service")
	f.StringVar(&opts.apiKey, "api-key", "", "API key sent as X-API-Key in --server mode")
	f.DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout in --server mode")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log solver details to stderr")

	cmd.MarkFlagsMutuallyExclusive("example", "json")
	cmd.MarkFlagsOneRequired("example", "json")
	cmd.MarkFlagsMutuallyExclusive("catalog", "server")

	return cmd
}

func run(ctx context.Context, opts *options) result {
	body := opts.order
	if opts.example {
		body = exampleOrder
	}

	if opts.server != "" {
		return quoteRemote(ctx, opts, body)
	}
	return quoteLocal(opts, body)
}

func quoteLocal(opts *options, body string) result {
	var req dto.QuoteRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return failure(fmt.Errorf("invalid order JSON: %w", err))
	}

	svcOpts := []service.Option{}
	if opts.catalog != "" {
		cat, err := catalog.Load(opts.catalog)
		if err != nil {
			return failure(err)
		}
		svcOpts = append(svcOpts, service.WithCatalog(cat))
	}

	q, err := service.NewQuoteOptimizerService(svcOpts...).Optimize(req.Items)
	if err != nil {
		log.Debug().Err(err).Str("kind", service.ErrorKind(err)).Msg("Quote rejected")
		return failure(err)
	}

	total, err := json.Marshal(q.TotalCost)
	if err != nil {
		return failure(err)
	}
	breakdown, err := json.Marshal(q.Breakdown)
	if err != nil {
		return failure(err)
	}
	return result{Status: "success", TotalCost: total, Breakdown: breakdown}
}

func quoteRemote(ctx context.Context, opts *options, body string) result {
	if !json.Valid([]byte(body)) {
		return failure(errors.New("invalid order JSON"))
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.server, "/")).
		SetTimeout(opts.timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	defer client.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	req := client.R().SetContext(ctx).SetBody(json.RawMessage(body))
	if opts.apiKey != "" {
		req.SetHeader("X-API-Key", opts.apiKey)
	}

	resp, err := req.Post("/api/optimize")
	if err != nil {
		return failure(fmt.Errorf("request to %s failed: %w", opts.server, err))
	}
	log.Debug().Int("status", resp.StatusCode()).Str("server", opts.server).Msg("Quote response received")

	raw := []byte(resp.String())
	if resp.IsError() {
		var apiErr dto.ErrorResponse
		if err := json.Unmarshal(raw, &apiErr); err != nil || (apiErr.Message == "" && apiErr.Error == "") {
			return failure(fmt.Errorf("server returned %s", resp.Status()))
		}
		if apiErr.Message == "" {
			apiErr.Message = apiErr.Error
		}
		return failure(errors.New(apiErr.Message))
	}

	var envelope struct {
		Data struct {
			TotalCost json.RawMessage `json:"total_cost"`
			Breakdown json.RawMessage `json:"breakdown"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Data.TotalCost) == 0 {
		return failure(fmt.Errorf("unexpected response from %s", opts.server))
	}
	return result{Status: "success", TotalCost: envelope.Data.TotalCost, Breakdown: envelope.Data.Breakdown}
}

func failure(err error) result {
	return result{Status: "error", Message: err.Error()}
}

func writeResult(out io.Writer, res result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
