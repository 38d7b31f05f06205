package graphdb

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yigit/coursegraph/internal/config"
)

// Client wraps a Neo4j driver bound to one database.
type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
}

// NewClient creates and verifies a Neo4j driver from configuration. Returns
// nil when Neo4j is not enabled.
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.Neo4j.Enabled {
		return nil, nil
	}

	auth := neo4j.BasicAuth(cfg.Neo4j.User, cfg.Neo4j.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4j.URI, auth, func(c *neo4j.Config) {
		c.SocketConnectTimeout = 10 * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify neo4j connectivity: %w", err)
	}

	return &Client{Driver: driver, Database: cfg.Neo4j.Database}, nil
}

// Session opens a read session against the configured database.
func (c *Client) Session(ctx context.Context) neo4j.SessionWithContext {
	return c.Driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.Database,
		AccessMode:   neo4j.AccessModeRead,
	})
}

// Close releases the driver.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	return c.Driver.Close(ctx)
}
