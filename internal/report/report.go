package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/archie1710/TRADING-BOT/internal/order"
)

const notAvailable = "N/A"

var rule = strings.Repeat("-", 40)

// Render prints the outcome of one order. Failures only point at the log,
// which carries the venue code and message.
func Render(w io.Writer, res order.Result, logPath string) {
	if !res.OK() {
		if len(logPath) == 0 {
			fmt.Fprintln(w, "\nORDER FAILED. See the log for details.")
			return
		}
		fmt.Fprintf(w, "\nORDER FAILED. See %s for details.\n", logPath)
		return
	}

	o := res.Order
	avg := notAvailable
	if o.AvgPrice.Valid {
		avg = o.AvgPrice.Decimal.String()
	}

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "ORDER SUCCESSFUL")
	fmt.Fprintf(w, "Order ID:  %d\n", o.OrderID)
	fmt.Fprintf(w, "Status:    %s\n", o.Status)
	fmt.Fprintf(w, "Type:      %s\n", o.Type)
	fmt.Fprintf(w, "Avg Price: %s\n", avg)
	fmt.Fprintln(w, rule)
}

// Banner is printed once at startup.
func Banner(w io.Writer, title string) {
	line := strings.Repeat("=", 40)
	fmt.Fprintln(w, "\n"+line)
	fmt.Fprintln(w, "   "+title)
	fmt.Fprintln(w, line)
}
