package main

import (
	"os"

	"github.com/MKhiriev/go-cipher-lab/internal/cli"
	"github.com/MKhiriev/go-cipher-lab/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCommand(cli.Options{
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
