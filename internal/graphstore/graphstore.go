// Package graphstore loads a compiled diagram's element and flow indices
// into an embedded Kùzu graph database so a diagram can be queried
// interactively for diagnostics ("what feeds this element", "what does this
// element unlock"). It is a diagnostic side channel only: nothing in
// emission depends on it, and its absence degrades to a logged warning.
package graphstore

import (
	"fmt"

	"github.com/kuzudb/go-kuzu"

	"github.com/bpmnchain/compiler/internal/bpmn"
)

// Store wraps a single in-process Kùzu database holding one diagram's graph.
type Store struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Open creates a fresh, file-backed Kùzu database at path and prepares its
// schema (an Element node table and a FLOWS_TO relationship table).
func Open(path string) (*Store, error) {
	db, err := kuzu.OpenDatabase(path, kuzu.DefaultSystemConfig())
	if err != nil {
		return nil, fmt.Errorf("opening graph store at %s: %w", path, err)
	}
	conn, err := kuzu.NewConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to graph store: %w", err)
	}
	s := &Store{db: db, conn: conn}
	if err := s.createSchema(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection and database.
func (s *Store) Close() {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

func (s *Store) createSchema() error {
	if _, err := s.conn.Query(`
		CREATE NODE TABLE IF NOT EXISTS Element(
			id STRING,
			name STRING,
			kind STRING,
			PRIMARY KEY(id)
		);
	`); err != nil {
		return fmt.Errorf("creating Element node table: %w", err)
	}
	if _, err := s.conn.Query(`
		CREATE REL TABLE IF NOT EXISTS FLOWS_TO(
			FROM Element TO Element,
			flowKind STRING
		);
	`); err != nil {
		return fmt.Errorf("creating FLOWS_TO relationship table: %w", err)
	}
	return nil
}

// Load populates the store with every element and every sequence/message
// flow edge in g.
func (s *Store) Load(g *bpmn.Graph) error {
	for _, el := range g.Elements {
		query := fmt.Sprintf(
			`MERGE (e:Element {id: %s}) ON CREATE SET e.name = %s, e.kind = %s ON MATCH SET e.name = %s, e.kind = %s;`,
			quote(el.ID), quote(el.Name), quote(el.Kind.String()), quote(el.Name), quote(el.Kind.String()),
		)
		if _, err := s.conn.Query(query); err != nil {
			return fmt.Errorf("loading element %s: %w", el.ID, err)
		}
	}

	for _, f := range g.SequenceFlows {
		if err := s.loadEdge(f.SourceID, f.TargetID, "sequence"); err != nil {
			return err
		}
	}
	for _, f := range g.MessageFlows {
		if err := s.loadEdge(f.SourceID, f.TargetID, "message"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadEdge(sourceID, targetID, kind string) error {
	query := fmt.Sprintf(
		`MATCH (a:Element {id: %s}), (b:Element {id: %s}) CREATE (a)-[:FLOWS_TO {flowKind: %s}]->(b);`,
		quote(sourceID), quote(targetID), quote(kind),
	)
	if _, err := s.conn.Query(query); err != nil {
		return fmt.Errorf("loading edge %s->%s: %w", sourceID, targetID, err)
	}
	return nil
}

// Dependents returns every element id whose sequence flow feeds directly
// into elementID (message flows are not followed), the same answer semantic.DependenciesOf gives over the in-memory graph,
// now queryable with Cypher for interactive diagram debugging.
func (s *Store) Dependents(elementID string) ([]string, error) {
	query := fmt.Sprintf(
		`MATCH (a:Element)-[f:FLOWS_TO]->(b:Element {id: %s}) WHERE f.flowKind = 'sequence' RETURN a.id;`,
		quote(elementID),
	)
	result, err := s.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying dependents of %s: %w", elementID, err)
	}
	defer result.Close()
	return collectStringColumn(result)
}

// Unlocks returns every element id elementID's outgoing flows feed into.
func (s *Store) Unlocks(elementID string) ([]string, error) {
	query := fmt.Sprintf(
		`MATCH (a:Element {id: %s})-[:FLOWS_TO]->(b:Element) RETURN b.id;`,
		quote(elementID),
	)
	result, err := s.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying successors of %s: %w", elementID, err)
	}
	defer result.Close()
	return collectStringColumn(result)
}

func collectStringColumn(result *kuzu.QueryResult) ([]string, error) {
	var out []string
	for result.HasNext() {
		record, err := result.Next()
		if err != nil {
			return nil, fmt.Errorf("reading graph query record: %w", err)
		}
		id, ok := record[0].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected column type for element id: %T", record[0])
		}
		out = append(out, id)
	}
	return out, nil
}

func quote(s string) string {
	return "'" + escapeSingleQuotes(s) + "'"
}

func escapeSingleQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\\', '\'')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
