// logstats - access log statistics
//
// logstats parses web server access logs and prints the most popular
// resources, statuses, days and clients as markdown or AsciiDoc tables.
package main

import (
	"os"

	"github.com/ccollicutt/logstats/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
