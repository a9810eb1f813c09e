package progress

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Commit stages the collected data paths and records a snapshot commit named
// after the processed items. Everything is best-effort: version control
// problems are logged and never fail the collection run.
func Commit(paths []string, items []string, status string) {
	if len(items) == 0 {
		return
	}

	add := exec.Command("git", append([]string{"add"}, paths...)...)
	if out, err := add.CombinedOutput(); err != nil {
		log.Error().Err(err).Str("output", strings.TrimSpace(string(out))).Msg("<Progress> git add failed")
		return
	}

	// Exit code 0 means nothing is staged.
	if exec.Command("git", "diff", "--cached", "--quiet").Run() == nil {
		log.Info().Msg("<Progress> no staged changes to commit")
		return
	}

	msg := commitMessage(items, status)
	commit := exec.Command("git", "commit", "-m", msg)
	if out, err := commit.CombinedOutput(); err != nil {
		log.Error().Err(err).Str("output", strings.TrimSpace(string(out))).Msg("<Progress> git commit failed")
		return
	}
	log.Info().Str("message", msg).Msg("<Progress> snapshot committed")
}

func commitMessage(items []string, status string) string {
	listed := items
	if len(listed) > 3 {
		listed = listed[:3]
	}
	msg := strings.Join(listed, ", ")
	if len(items) > 3 {
		msg += fmt.Sprintf(" (+%d more)", len(items)-3)
	}
	return fmt.Sprintf("Update: %s - %s", msg, status)
}
