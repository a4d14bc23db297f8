package main

import (
	"fmt"
	"os"

	"lobsum/internal/models"
	"lobsum/internal/summary"

	"github.com/spf13/cobra"
)

func main() {
	var (
		issueType    string
		voc          string
		stock        string
		followUpDate string
		dpSMCall     string
	)

	rootCmd := &cobra.Command{
		Use:   "summarize",
		Short: "Generate a customer-support LOB summary per SOP rules",
		Run: func(cmd *cobra.Command, args []string) {
			output := summary.Generate(&models.SummaryRequest{
				IssueType:      issueType,
				VOC:            voc,
				StockAvailable: stock,
				FollowUpDate:   followUpDate,
				DPSMCall:       dpSMCall,
			})
			fmt.Println(output)
		},
	}

	rootCmd.Flags().StringVar(&issueType, "issue", "", "Issue type, e.g. 'Ordered by Mistake'")
	rootCmd.Flags().StringVar(&voc, "voc", "", "Customer statement / VOC")
	rootCmd.Flags().StringVar(&stock, "stock", "", "Stock/slot availability (Yes/No)")
	rootCmd.Flags().StringVar(&followUpDate, "follow", "", "Follow-up date (optional)")
	rootCmd.Flags().StringVar(&dpSMCall, "dp", "", "DP/SM call override (default NA)")
	_ = rootCmd.MarkFlagRequired("issue")
	_ = rootCmd.MarkFlagRequired("voc")
	_ = rootCmd.MarkFlagRequired("stock")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
