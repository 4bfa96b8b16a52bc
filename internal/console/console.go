package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"github.com/Domenick1991/ferrybooking/internal/service/ledger"
	"github.com/Domenick1991/ferrybooking/internal/service/reports"
	"github.com/charmbracelet/lipgloss"
)

// Store is the persistence the console drives after each successful mutation.
type Store interface {
	SavePassengers(ctx context.Context, passengers []domain.Passenger) error
	SaveReservations(ctx context.Context, passengers []domain.Passenger) error
	SaveAll(ctx context.Context, passengers []domain.Passenger) error
	DumpPassengers(w io.Writer) (bool, error)
	DumpReservations(w io.Writer) (bool, error)
}

type Console struct {
	in      *bufio.Reader
	lines   <-chan inputLine
	out     io.Writer
	ledger  ledger.LedgerUseCase
	reports reports.ReportUseCase
	store   Store
	logger  logger.AppLogger
	title   lipgloss.Style
}

func New(in io.Reader, out io.Writer, ledgerSvc ledger.LedgerUseCase, reportSvc reports.ReportUseCase, store Store, l logger.AppLogger) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		ledger:  ledgerSvc,
		reports: reportSvc,
		store:   store,
		logger:  l,
		title:   lipgloss.NewRenderer(out).NewStyle().Bold(true),
	}
}

type menu struct {
	title string
	items []string
	back  string
}

var mainMenu = menu{
	title: "Menu:",
	items: []string{
		"Creation Menu",
		"Display Menu",
		"Requests to the system",
		"Load Menu",
	},
	back: "Exit",
}

const invalidChoice = "Invalid choice. Please enter a number from the menu."

// Run serves the main menu until the operator exits or input ends. Both files are
// written once more on the way out. When ctx is canceled Run returns at the next prompt
// without saving: every mutation is already on disk.
func (c *Console) Run(ctx context.Context) error {
	logger.LogInfo(ctx, c.logger, "console session started", nil)

	inputCtx, stopInput := context.WithCancel(ctx)
	defer stopInput()
	c.lines = readLines(inputCtx, c.in)

	for {
		choice, err := c.choose(ctx, mainMenu)
		if err != nil {
			break
		}
		if choice == 0 {
			break
		}

		switch choice {
		case 1:
			err = c.creationMenu(ctx)
		case 2:
			err = c.displayMenu(ctx)
		case 3:
			err = c.reportMenu(ctx)
		case 4:
			err = c.loadMenu(ctx)
		}
		if err != nil {
			break
		}
	}

	if ctx.Err() != nil {
		logger.LogInfo(ctx, c.logger, "console session interrupted", nil)
		return nil
	}

	c.saveOnExit(ctx)
	c.println("Exiting program.")
	logger.LogInfo(ctx, c.logger, "console session finished", nil)
	return nil
}

// submenu loops over m until the operator picks 0. Handlers run for choices 1..n.
func (c *Console) submenu(ctx context.Context, m menu, handlers ...func(context.Context) error) error {
	for {
		c.println()
		choice, err := c.choose(ctx, m)
		if err != nil {
			return err
		}
		if choice == 0 {
			c.println()
			return nil
		}
		if err := handlers[choice-1](ctx); err != nil {
			return err
		}
	}
}

// choose prints m and reads a selection, re-prompting until it is in range.
func (c *Console) choose(ctx context.Context, m menu) (int, error) {
	for {
		c.println(c.title.Render(m.title))
		for i, item := range m.items {
			c.printf("%d. %s\n", i+1, item)
		}
		c.printf("0. %s\n", m.back)

		line, err := c.readLine(ctx, "Enter your choice: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 0 && choice <= len(m.items) {
			return choice, nil
		}
		c.println(invalidChoice)
		c.println()
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines feeds r to the console one line at a time. Lines have no length limit.
// The channel is closed at end of input or once ctx is done.
func readLines(ctx context.Context, r *bufio.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		for {
			text, err := r.ReadString('\n')
			if text == "" && err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: err}:
					case <-ctx.Done():
					}
				}
				return
			}

			text = strings.TrimRight(text, "\r\n")
			select {
			case lines <- inputLine{text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// readLine returns io.EOF when the operator's input is exhausted and ctx.Err once ctx is done.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	c.printf("%s", prompt)

	select {
	case <-ctx.Done():
		c.println()
		return "", ctx.Err()
	case line, ok := <-c.lines:
		switch {
		case ctx.Err() != nil:
			c.println()
			return "", ctx.Err()
		case !ok:
			c.println()
			return "", io.EOF
		case line.err != nil:
			c.println()
			return "", line.err
		}
		return line.text, nil
	}
}

func (c *Console) readInt(ctx context.Context, prompt string) (int, bool, error) {
	line, err := c.readLine(ctx, prompt)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	return n, err == nil, nil
}

func (c *Console) readFloat(ctx context.Context, prompt string) (float64, bool, error) {
	line, err := c.readLine(ctx, prompt)
	if err != nil {
		return 0, false, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	return f, err == nil, nil
}

// fail shows a rejected operation to the operator and logs it. The session goes on.
func (c *Console) fail(ctx context.Context, operation string, err error) {
	logger.LogError(ctx, c.logger, operation+" failed", err, nil)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.println("Passenger not found.")
	case errors.Is(err, domain.ErrCapacity), errors.Is(err, domain.ErrConflict) && !errors.Is(err, domain.ErrValidation):
		c.printf("Cannot add a ticket. %s.\n", reason(err))
	case errors.Is(err, domain.ErrValidation):
		c.printf("Invalid input: %s.\n", reason(err))
	case errors.Is(err, domain.ErrIO):
		c.printf("Error accessing the file: %v\n", err)
	default:
		c.printf("Unexpected error: %v\n", err)
	}
	c.println()
}

// reason strips the kind prefixes so the operator sees only the detail.
func reason(err error) string {
	msg := err.Error()
	for _, kind := range []error{domain.ErrValidation, domain.ErrConflict, domain.ErrCapacity, domain.ErrNotFound} {
		msg = strings.TrimPrefix(msg, kind.Error()+": ")
	}
	return msg
}

func (c *Console) saveOnExit(ctx context.Context) {
	passengers, err := c.ledger.Passengers(ctx)
	if err != nil {
		c.fail(ctx, "exit snapshot", err)
		return
	}
	c.println("Saving data to file before exiting...")
	if err := c.store.SaveAll(ctx, passengers); err != nil {
		c.fail(ctx, "exit snapshot", err)
		return
	}
	c.println("Data saved to file successfully.")
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}
