// Command chat is a terminal front end for the wellness companion.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wellness/internal/responder"
	"wellness/internal/validation"
)

var (
	seed  uint64
	delay time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the wellness companion in your terminal",
	Long: `Reads one message per line from stdin and prints the companion's reply.

Type 'quit' or 'exit' to leave. If you are thinking about harming yourself,
please call or text 988 (U.S.) or your local emergency number.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var src responder.Source
		if seed != 0 {
			src = responder.NewSeededSource(seed)
		}
		return runChat(cmd.InOrStdin(), cmd.OutOrStdout(), responder.New(src), delay)
	},
}

func init() {
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible replies (0 = random)")
	rootCmd.Flags().DurationVar(&delay, "delay", 350*time.Millisecond, "Pause before each reply")
}

// runChat is the read-reply loop. Blank lines are skipped. Lines of any
// length are read whole so oversized input reaches validation.
func runChat(in io.Reader, out io.Writer, r *responder.Responder, pause time.Duration) error {
	fmt.Fprintln(out, "Companion: Hi, I’m here to listen. How are you feeling today?")
	fmt.Fprintln(out, "(type 'quit' to exit)")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if quit := handleLine(out, r, pause, line); quit || err != nil {
			return nil
		}
	}
}

// handleLine answers one input line and reports whether the user asked to leave.
func handleLine(out io.Writer, r *responder.Responder, pause time.Duration, line string) bool {
	message := validation.NormalizeMessage(line)
	if message == "" {
		return false
	}
	if cmd := strings.ToLower(message); cmd == "quit" || cmd == "exit" {
		return true
	}
	if valid, msg := validation.ValidateMessage(message); !valid {
		fmt.Fprintf(out, "(%s)\n", msg)
		return false
	}

	reply := r.Respond(message)
	if reply.Classification.Crisis {
		slog.Warn("crisis phrase detected", "source", "cli")
	}
	if pause > 0 {
		time.Sleep(pause)
	}
	fmt.Fprintf(out, "\nCompanion: %s\n\n", plainText(reply.Text))
	return false
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
