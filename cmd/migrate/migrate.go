package migrate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/pflag"
)

const (
	auctionMigrationSource = "modules/auction/database/postgresql/migrations"
	auctionMigrationTable  = "auction_schema_migrations"
)

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

type migrateCmdOptions struct {
	DatabaseURL   string
	AuctionSource string
}

func (o *migrateCmdOptions) bindFlags(flags *pflag.FlagSet, direction string) {
	flags.StringVar(&o.AuctionSource, "auction-source", auctionMigrationSource, fmt.Sprintf("Path to auction %s migrations directory.", direction))
	flags.StringVar(&o.DatabaseURL, "database", "", "Database url to run migration on. Default is modules.auction.postgres.url of the config.")
}

func (o *migrateCmdOptions) databaseURL() (*url.URL, error) {
	rawURL := o.DatabaseURL
	if rawURL == "" {
		rawURL = config.Load().Modules.Auction.Postgres.URL
	}
	if rawURL == "" {
		return nil, errors.New("--database is required")
	}
	databaseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", databaseURL.Scheme)
	}
	return databaseURL, nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	// assume args already validated by cobra to be len(args) <= 1
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse N")
	}
	if n < 0 {
		return 0, errors.New("N must be a positive integer")
	}
	return n, nil
}

func newMigrate(databaseURL *url.URL, module, sourcePath, migrationTable string) (*migrate.Migrate, error) {
	newDatabaseURL := cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {migrationTable}})
	m, err := migrate.New("file://"+sourcePath, newDatabaseURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = newMigrateLogger(module, false)
	return m, nil
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}
