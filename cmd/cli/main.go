package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
)

var (
	baseURL string
	timeout time.Duration
)

type statementFlags struct {
	ledgerType string
	from       string
	to         string
	order      string
	asJSON     bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger-cli",
		Short:         "Party ledger CLI tool",
		Long:          `A command line interface for reading reconstructed party statements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 20*time.Second, "Request timeout")

	root.AddCommand(statementCmd(), verifyCmd())
	return root
}

func addStatementFlags(cmd *cobra.Command, f *statementFlags) {
	cmd.Flags().StringVar(&f.ledgerType, "type", "", "Ledger type: customer, supplier or employee")
	cmd.Flags().StringVar(&f.from, "from", "", "First included day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Last included day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.order, "order", "desc", "Display order: desc or asc")
	_ = cmd.MarkFlagRequired("type")
}

func statementCmd() *cobra.Command {
	var f statementFlags
	cmd := &cobra.Command{
		Use:   "statement <party-id>",
		Short: "Print a party statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := fetchStatement(cmd, args[0], f)
			if err != nil {
				return err
			}
			if f.asJSON {
				printJSON(resp)
				return nil
			}
			printStatement(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	addStatementFlags(cmd, &f)
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the raw JSON response")
	return cmd
}

func verifyCmd() *cobra.Command {
	var f statementFlags
	cmd := &cobra.Command{
		Use:   "verify <party-id>",
		Short: "Check a statement's running balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := fetchStatement(cmd, args[0], f)
			if err != nil {
				return err
			}

			problems := verifyStatement(resp)
			out := cmd.OutOrStdout()
			if len(problems) > 0 {
				for _, p := range problems {
					fmt.Fprintf(out, "  - %s\n", p)
				}
				return fmt.Errorf("statement verification FAILED (%d problems)", len(problems))
			}

			fmt.Fprintf(out, "Statement verification PASSED\n")
			fmt.Fprintf(out, "Entries: %d\nClosing balance: %s\n", resp.Meta.TransactionCount, resp.Meta.ClosingBalance)
			if len(resp.Meta.Warnings) > 0 {
				fmt.Fprintf(out, "Partial statement: %d warnings\n", len(resp.Meta.Warnings))
			}
			return nil
		},
	}
	addStatementFlags(cmd, &f)
	return cmd
}

func statementURL(partyID string, f statementFlags) string {
	q := url.Values{}
	q.Set("type", f.ledgerType)
	if f.from != "" {
		q.Set("date_from", f.from)
	}
	if f.to != "" {
		q.Set("date_to", f.to)
	}
	if f.order != "" {
		q.Set("order", f.order)
	}
	return baseURL + "/api/v1/ledgers/" + url.PathEscape(partyID) + "?" + q.Encode()
}

func fetchStatement(cmd *cobra.Command, partyID string, f statementFlags) (*dto.StatementResponse, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, statementURL(partyID, f), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("request failed (status %d)", resp.StatusCode)
	}

	var statement dto.StatementResponse
	if err := json.Unmarshal(body, &statement); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &statement, nil
}

// verifyStatement recomputes running balances in chronological order and
// compares them with what the server reported.
func verifyStatement(s *dto.StatementResponse) []string {
	var problems []string

	if s.Meta.TransactionCount != len(s.Data) {
		problems = append(problems, fmt.Sprintf("transaction_count %d does not match %d entries",
			s.Meta.TransactionCount, len(s.Data)))
	}

	chronological := slices.Clone(s.Data)
	if s.Meta.Order != string(domain.OldestFirst) {
		slices.Reverse(chronological)
	}

	running := decimal.Zero
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range chronological {
		debit = debit.Add(e.DebitAmount)
		credit = credit.Add(e.CreditAmount)
		running = running.Add(e.DebitAmount).Sub(e.CreditAmount)
		if !e.Balance.Equal(running) {
			problems = append(problems, fmt.Sprintf("entry %s: balance %s, expected %s", e.ID, e.Balance, running))
		}
	}

	if !debit.Equal(s.Meta.TotalDebit) {
		problems = append(problems, fmt.Sprintf("total_debit %s, expected %s", s.Meta.TotalDebit, debit))
	}
	if !credit.Equal(s.Meta.TotalCredit) {
		problems = append(problems, fmt.Sprintf("total_credit %s, expected %s", s.Meta.TotalCredit, credit))
	}
	if !running.Equal(s.Meta.ClosingBalance) {
		problems = append(problems, fmt.Sprintf("closing_balance %s, expected %s", s.Meta.ClosingBalance, running))
	}

	return problems
}

func printStatement(out io.Writer, s *dto.StatementResponse) {
	fmt.Fprintf(out, "%s %s (%s)\n", s.Meta.LedgerType, s.Meta.LedgerID, s.Meta.PartyName)
	fmt.Fprintf(out, "As of %s\n\n", s.Meta.AsOf.Format(time.RFC3339))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tTYPE\tREFERENCE\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE\t")
	for _, e := range s.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			e.Date, e.TransactionType, e.ReferenceNumber, truncate(e.Description, 32),
			e.DebitAmount.StringFixed(2), e.CreditAmount.StringFixed(2), e.Balance.StringFixed(2))
	}
	_ = tw.Flush()

	fmt.Fprintf(out, "\nEntries: %d  Debit: %s  Credit: %s  Closing: %s\n",
		s.Meta.TransactionCount,
		s.Meta.TotalDebit.StringFixed(2),
		s.Meta.TotalCredit.StringFixed(2),
		s.Meta.ClosingBalance.StringFixed(2))

	for _, w := range s.Meta.Warnings {
		fmt.Fprintf(out, "warning: %s %s %s %s\n", w.Source, w.Code, w.RecordID, w.Error)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
