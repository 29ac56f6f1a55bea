// Package clipboard publishes text to the system clipboard on a best-effort
// basis. A missing or broken clipboard never fails the calling command; the
// caller falls back to printing the text instead.
package clipboard

import "github.com/atotto/clipboard"

// Publisher copies text to the system clipboard.
// Implementations must not fail the command if the clipboard is unavailable.
type Publisher interface {
	Copy(text string) (copied bool, err error)
}

// System publishes via the OS clipboard (pbcopy, xclip/xsel, clip.exe).
type System struct{}

// Copy writes text to the clipboard. copied is false when no clipboard
// utility is available on this machine.
func (System) Copy(text string) (bool, error) {
	if clipboard.Unsupported {
		return false, nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return false, err
	}
	return true, nil
}

// Discard is a Publisher that never copies. Used when the user disables
// clipboard integration and in tests.
type Discard struct{}

func (Discard) Copy(string) (bool, error) { return false, nil }
