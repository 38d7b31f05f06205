package repositories

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yigit/coursegraph/internal/graphdb"
	"github.com/yigit/coursegraph/internal/planner"
)

// Neo4jSnapshotSource loads the catalog from a Neo4j graph where courses are
// (:Course) nodes linked by [:PRE_REQUIRES] edges and offered via
// [:OFFERED_IN] to (:Semester) nodes.
type Neo4jSnapshotSource struct {
	client *graphdb.Client
}

// NewNeo4jSnapshotSource creates a snapshot source over a Neo4j client
func NewNeo4jSnapshotSource(client *graphdb.Client) *Neo4jSnapshotSource {
	return &Neo4jSnapshotSource{client: client}
}

// Name identifies the source in logs and admin responses
func (s *Neo4jSnapshotSource) Name() string {
	return "neo4j"
}

// LoadSnapshot reads courses, prerequisite edges and semester offerings in
// one read transaction
func (s *Neo4jSnapshotSource) LoadSnapshot(ctx context.Context) (planner.Snapshot, error) {
	session := s.client.Session(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		var snap planner.Snapshot

		courseRes, err := tx.Run(ctx, `
			MATCH (c:Course)
			RETURN c.code AS code, c.name AS name, c.credits AS credits, c.department AS department
			ORDER BY code
		`, nil)
		if err != nil {
			return nil, err
		}
		for courseRes.Next(ctx) {
			rec := courseRes.Record()
			snap.Courses = append(snap.Courses, planner.Course{
				Code:       stringValue(rec, "code"),
				Name:       stringValue(rec, "name"),
				Credits:    intValue(rec, "credits"),
				Department: stringValue(rec, "department"),
			})
		}
		if err := courseRes.Err(); err != nil {
			return nil, err
		}

		edgeRes, err := tx.Run(ctx, `
			MATCH (a:Course)-[:PRE_REQUIRES]->(b:Course)
			RETURN a.code AS from, b.code AS to
			ORDER BY from, to
		`, nil)
		if err != nil {
			return nil, err
		}
		for edgeRes.Next(ctx) {
			rec := edgeRes.Record()
			snap.Edges = append(snap.Edges, planner.PrerequisiteEdge{
				From: stringValue(rec, "from"),
				To:   stringValue(rec, "to"),
			})
		}
		if err := edgeRes.Err(); err != nil {
			return nil, err
		}

		semRes, err := tx.Run(ctx, `
			MATCH (s:Semester)
			OPTIONAL MATCH (c:Course)-[:OFFERED_IN]->(s)
			RETURN s.year AS year, s.term AS term, s.name AS name, s.position AS position,
			       collect(c.code) AS courses
			ORDER BY position
		`, nil)
		if err != nil {
			return nil, err
		}
		for semRes.Next(ctx) {
			rec := semRes.Record()
			sem := planner.SemesterOffering{
				Year:     intValue(rec, "year"),
				Term:     intValue(rec, "term"),
				Name:     stringValue(rec, "name"),
				Position: intValue(rec, "position"),
			}
			if raw, ok := rec.Get("courses"); ok {
				if list, ok := raw.([]any); ok {
					for _, item := range list {
						if code, ok := item.(string); ok && code != "" {
							sem.Courses = append(sem.Courses, code)
						}
					}
				}
			}
			snap.Semesters = append(snap.Semesters, sem)
		}
		if err := semRes.Err(); err != nil {
			return nil, err
		}

		return snap, nil
	})
	if err != nil {
		return planner.Snapshot{}, err
	}

	return result.(planner.Snapshot), nil
}

func stringValue(rec *neo4j.Record, key string) string {
	if raw, ok := rec.Get(key); ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return ""
}

func intValue(rec *neo4j.Record, key string) int {
	if raw, ok := rec.Get(key); ok {
		switch v := raw.(type) {
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
