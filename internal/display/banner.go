package display

import (
	"fmt"
	"os"

	"github.com/backmassage/datemark/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____        _                            _
|  _ \  __ _| |_ ___ _ __ ___   __ _ _ __| | __
| | | |/ _`+"`"+` | __/ _ \ '_ `+"`"+` _ \ / _`+"`"+` | '__| |/ /
| |_| | (_| | ||  __/ | | | | | (_| | |  |   <
|____/ \__,_|\__\___|_| |_| |_|\__,_|_|  |_|\_\
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
