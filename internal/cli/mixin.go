package cli

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/docpatterns/mixin"
)

func newMixinCmd(a *app) *cobra.Command {
	var skipAdd bool

	cmd := &cobra.Command{
		Use:   "mixin",
		Short: "Display a report and a resume composed from mixins",
		Long: `mixin builds a report (with the source mixin) and a resume (with the
certificates mixin) from the demo inputs and displays both.

--skip-add leaves the mixin attributes unset, which makes display fail.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runMixin(skipAdd)
		},
	}

	cmd.Flags().BoolVar(&skipAdd, "skip-add", false, "do not call AddSource/AddCertificates before display")
	return cmd
}

func (a *app) runMixin(skipAdd bool) error {
	in := a.cfg.Demo

	report := mixin.NewReport(in.Report.Title, in.Report.Content, in.Report.Author)
	resume := mixin.NewResume(in.Resume.Title, in.Resume.Content, in.Resume.ApplicantName)
	if skipAdd {
		a.out.Warning("mixin attributes left unset")
	} else {
		report.AddSource(in.Report.Source)
		resume.AddCertificates(in.Resume.Certificates)
	}

	docs := []struct {
		name string
		doc  mixin.Displayer
	}{
		{"report", report},
		{"resume", resume},
	}
	for _, d := range docs {
		if err := d.doc.Display(a.out.Out); err != nil {
			return a.fail(err, "Call the matching Add method before Display.")
		}
		a.log.Debug("mixin.displayed", "document", d.name)
	}
	return nil
}
