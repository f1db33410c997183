package cli

import (
	"fmt"
	"strings"

	"github.com/metanewsx/metanewsx/internal/util"
	"github.com/spf13/cobra"
)

// decisionGradeBrief is the canned example shown by the demo command.
const decisionGradeBrief = `
Decision-Grade Brief
====================

Topic: Accelerating Community AI Literacy Programs

Key Signal
- Public library systems adopting AI training cohorts have doubled attendance
  in the last 12 months across three pilot cities.

Why It Matters
- Upskilling residents improves employability and reduces local talent gaps.
- Libraries can become trusted distribution hubs for responsible AI guidance.

Risks & Watchouts
- Inconsistent funding cycles may disrupt instructor continuity.
- Programs must align with data privacy expectations for public institutions.

Recommended Actions (Next 30 Days)
1) Identify two library partners with existing digital literacy classes.
2) Secure a sponsor for an eight-week pilot cohort.
3) Publish a transparent syllabus and outcomes dashboard.
`

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a sample Decision-Grade Brief",
	Long:  `Display a fixed example of the brief format without analyzing any text.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.TrimSpace(util.Dedent(decisionGradeBrief)))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
