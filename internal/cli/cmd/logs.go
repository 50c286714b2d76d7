package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

const defaultLogsLines = 50

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View session logs",
	Long: `View dockyard logs by session.

Without arguments, lists the session log files.
With a session ID (or partial match), prints the end of that session's log.

Examples:
  dockyard logs               # List all sessions
  dockyard logs a7b3          # View logs for session ending in 'a7b3'
  dockyard logs -n 100 a7b3   # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

// sessionLog is one session log file.
type sessionLog struct {
	SessionID string
	ShortID   string
	Path      string
	Size      int64
	ModTime   time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if len(args) == 0 {
		logs, err := listSessionLogs(logDir)
		if err != nil {
			return err
		}
		return outputSessionLogs(w, logs)
	}

	log, err := findSessionLog(logDir, args[0])
	if err != nil {
		return err
	}
	f, err := os.Open(log.Path)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	lines, err := tailLines(f, logsLines)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

// listSessionLogs returns the session logs in dir, newest first.
func listSessionLogs(dir string) ([]sessionLog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log dir: %w", err)
	}

	var logs []sessionLog
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := logging.ParseSessionFilename(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, sessionLog{
			SessionID: id,
			ShortID:   shortSessionID(id),
			Path:      filepath.Join(dir, entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}
	// IDs start with their timestamp.
	sort.Slice(logs, func(i, j int) bool { return logs[i].SessionID > logs[j].SessionID })
	return logs, nil
}

// shortSessionID is the random suffix of a session ID.
func shortSessionID(id string) string {
	if i := strings.LastIndex(id, "_"); i >= 0 && i < len(id)-1 {
		return id[i+1:]
	}
	return id
}

// findSessionLog matches query against full and short session IDs. An
// ambiguous query is an error.
func findSessionLog(dir, query string) (sessionLog, error) {
	logs, err := listSessionLogs(dir)
	if err != nil {
		return sessionLog{}, err
	}
	var matches []sessionLog
	for _, l := range logs {
		if l.SessionID == query || l.ShortID == query {
			return l, nil
		}
		if strings.Contains(l.SessionID, query) {
			matches = append(matches, l)
		}
	}
	switch len(matches) {
	case 0:
		return sessionLog{}, fmt.Errorf("no session matching %q", query)
	case 1:
		return matches[0], nil
	default:
		return sessionLog{}, fmt.Errorf("%d sessions match %q, be more specific", len(matches), query)
	}
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return ring, nil
}

func outputSessionLogs(w io.Writer, logs []sessionLog) error {
	if len(logs) == 0 {
		_, err := fmt.Fprintln(w, "No session logs found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SHORT\tSESSION ID\tSIZE\tLAST WRITE")
	now := time.Now()
	for _, l := range logs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			l.ShortID,
			l.SessionID,
			formatSize(l.Size),
			styles.RelativeTime(l.ModTime, now),
		)
	}
	return tw.Flush()
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
