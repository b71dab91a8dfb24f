package cli

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/routines"
	"github.com/agbru/speedwatch/internal/ui"
)

// CLIColorProvider supplies the current theme's colors to apperrors.
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// HandleError prints err in the CLI colors and returns its exit code.
func HandleError(err error, out io.Writer) int {
	return apperrors.HandleRunError(err, out, CLIColorProvider{})
}

// PrintCatalog lists the available routines and growth models.
func PrintCatalog(out io.Writer, reg *routines.Registry, models []growth.Model) {
	fmt.Fprintf(out, "%sRoutines:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range reg.List() {
		rt := reg.MustGet(name)
		fmt.Fprintf(out, "  %s%-13s%s %-7s %s %s(sizes %s)%s\n",
			ui.ColorBlue(), rt.Name, ui.ColorReset(),
			rt.Growth, rt.Description,
			ui.ColorGrey(), joinSizes(rt.DefaultSizes), ui.ColorReset())
	}

	fmt.Fprintf(out, "\n%sModels:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, m := range models {
		domain := ""
		if m.HasLog2() {
			domain = " (log-domain overflow check)"
		}
		fmt.Fprintf(out, "  %s%s%s%s\n", ui.ColorBlue(), m.Name, ui.ColorReset(), domain)
	}
}

func joinSizes(sizes []uint64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ",")
}
