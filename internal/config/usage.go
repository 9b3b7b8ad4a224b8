package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/decicalc/internal/ui"
)

// setCustomUsage installs a themed usage function on fs.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// The theme is not initialized yet when parsing fails.
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()
		fmt.Fprintf(out, "\n%sDecimal Multiplication Workbench%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Multiplies two decimals with several independent algorithms and compares the products.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] [a] [b]\n  %s [flags] -- -12.5 4\n\n%sFlags:%s\n",
			t.Warning, t.Reset, fs.Name(), fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			sig := "-" + f.Name
			if name != "" {
				sig += " " + name
			}
			fmt.Fprintf(out, "  %s%-22s%s %s", t.Primary, sig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\n%sEnvironment:%s\n  Every setting above can be given as %sNAME (e.g. %sALGO=grid,dft).\n\n",
			t.Warning, t.Reset, EnvPrefix, EnvPrefix)
	}
}
