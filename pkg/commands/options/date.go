package options

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	apod "tableflip.dev/apod/pkg/picture"
)

// DateOptions selects the day of a by-date lookup.
type DateOptions struct {
	DateString string
	// Prompt asks for the date on the terminal instead.
	Prompt bool
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Specify a date, example: --date="2024-02-28", --date="2024-2-28" or --date="2/28".`)
	cmd.Flags().BoolVarP(&o.Prompt, "interactive", "i", false,
		`Prompt for the date.`)
}

// GetDate normalizes the date to YYYY-MM-DD. Empty stays empty.
func (o *DateOptions) GetDate() (string, error) {
	return NormalizeDate(o.DateString, time.Now())
}

// NormalizeDate rewrites s as YYYY-MM-DD. Only the shape is checked, so
// an impossible day such as 2024-02-30 still reaches the backend and fails
// there like any other missing picture. A month/day without a year means
// the most recent such day relative to now.
func NormalizeDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "", nil
	case apod.IsDateShaped(s):
		return s, nil
	}

	if parts := strings.Split(s, "-"); len(parts) == 3 {
		y, yok := number(parts[0], 4, 4)
		m, mok := number(parts[1], 1, 2)
		d, dok := number(parts[2], 1, 2)
		if yok && mok && dok {
			return fmt.Sprintf("%04d-%02d-%02d", y, m, d), nil
		}
	}
	if parts := strings.Split(s, "/"); len(parts) == 2 {
		m, mok := number(parts[0], 1, 2)
		d, dok := number(parts[1], 1, 2)
		if mok && dok {
			y := now.Year()
			if m > int(now.Month()) || (m == int(now.Month()) && d > now.Day()) {
				y--
			}
			return fmt.Sprintf("%04d-%02d-%02d", y, m, d), nil
		}
	}
	return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// number parses s as a decimal of minLen to maxLen digits.
func number(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.HasPrefix(s, "+") {
		return 0, false
	}
	return n, true
}

// PromptDate asks for a date on in/out, defaulting to today.
func PromptDate(in io.ReadCloser, out io.WriteCloser) (string, error) {
	now := time.Now()
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		_, err := NormalizeDate(input, now)
		return err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Date [%s]", apod.FormatDate(now)),
		Templates: templates,
		Validate:  validate,
		Stdin:     in,
		Stdout:    out,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", err
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	if strings.TrimSpace(result) == "" {
		return apod.FormatDate(now), nil
	}
	return NormalizeDate(result, now)
}
