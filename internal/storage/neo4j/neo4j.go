// Package neo4j is a property-graph implementation of RelationshipStorage.
package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/storage"
)

// Graph is a neo4j-backed relationship store.
type Graph struct {
	d neo4j.DriverWithContext
}

var _ storage.RelationshipStorage = &Graph{}

// relTypes whitelists relationship types because cypher cannot parametrize them.
var relTypes = map[entities.EdgeType]string{
	entities.EdgeLikes:  "LIKES",
	entities.EdgeBlocks: "BLOCKS",
	entities.EdgeViewed: "VIEWED",
	entities.EdgeHasTag: "HAS_TAG",
}

// New returns neo4j implementation of RelationshipStorage.
func New(d neo4j.DriverWithContext) *Graph {
	return &Graph{d: d}
}

// Ping checks connectivity with the graph.
func (g *Graph) Ping(ctx context.Context) error {
	return g.d.VerifyConnectivity(ctx)
}

// EnsureSchema creates uniqueness constraints so id lookups are indexed.
func (g *Graph) EnsureSchema(ctx context.Context) error {
	session := g.d.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, q := range []string{
			`CREATE CONSTRAINT profile_id_unique IF NOT EXISTS FOR (p:Profile) REQUIRE p.id IS UNIQUE`,
			`CREATE CONSTRAINT tag_name_unique IF NOT EXISTS FOR (t:Tag) REQUIRE t.name IS UNIQUE`,
		} {
			if _, err := tx.Run(ctx, q, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (g *Graph) write(ctx context.Context, query string, params map[string]any) error {
	session := g.d.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, query, params)
		return nil, err
	}); err != nil {
		return fmt.Errorf("failed to execute write: %w", err)
	}
	return nil
}

func (g *Graph) read(ctx context.Context, work neo4j.ManagedTransactionWork) (any, error) {
	session := g.d.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	return session.ExecuteRead(ctx, work)
}

const shortProfileReturn = `RETURN p.id AS id, p.username AS username,
		coalesce(p.first_name, '') AS first_name, coalesce(p.last_name, '') AS last_name,
		coalesce(p.photos[0], '') AS photo, coalesce(p.fame_rating, 0) AS fame_rating`

func shortProfileFromRecord(rec *neo4j.Record) entities.ShortProfile {
	get := func(key string) any {
		v, _ := rec.Get(key)
		return v
	}

	username, _ := get("username").(string)

	return entities.ShortProfile{
		ID:         get("id").(string),
		Username:   username,
		FirstName:  get("first_name").(string),
		LastName:   get("last_name").(string),
		Photo:      get("photo").(string),
		FameRating: int(get("fame_rating").(int64)),
	}
}

// GetShortProfile returns compact profile view by id.
func (g *Graph) GetShortProfile(ctx context.Context, id string) (*entities.ShortProfile, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (p:Profile {id: $id}) `+shortProfileReturn, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}

		if res.Next(ctx) {
			p := shortProfileFromRecord(res.Record())
			return &p, nil
		}
		return nil, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	if out == nil {
		return nil, storage.ErrNotFound
	}
	return out.(*entities.ShortProfile), nil
}

// EdgeExists reports whether the directed edge is present.
func (g *Graph) EdgeExists(ctx context.Context, t entities.EdgeType, from, to string) (bool, error) {
	rel, ok := relTypes[t]
	if !ok {
		return false, fmt.Errorf("unknown edge type %q", t)
	}

	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := fmt.Sprintf(
			`MATCH (a:Profile {id: $from}), (b:Profile {id: $to})
			RETURN EXISTS((a)-[:%s]->(b)) AS present`, rel)

		res, err := tx.Run(ctx, query, map[string]any{"from": from, "to": to})
		if err != nil {
			return nil, err
		}

		if res.Next(ctx) {
			v, _ := res.Record().Get("present")
			return v.(bool), nil
		}
		// either endpoint is missing, so the edge is too
		return false, res.Err()
	})
	if err != nil {
		return false, fmt.Errorf("failed to query edge: %w", err)
	}

	present, _ := out.(bool)
	return present, nil
}

// CreateEdge creates the directed edge, merging endpoint nodes if needed.
func (g *Graph) CreateEdge(ctx context.Context, t entities.EdgeType, from, to string) error {
	rel, ok := relTypes[t]
	if !ok {
		return fmt.Errorf("unknown edge type %q", t)
	}

	query := fmt.Sprintf(`
		MERGE (a:Profile {id: $from})
		MERGE (b:Profile {id: $to})
		MERGE (a)-[r:%s]->(b)
		ON CREATE SET r.created_at = datetime()`, rel)

	return g.write(ctx, query, map[string]any{"from": from, "to": to})
}

// DeleteEdge deletes the directed edge, no-op if absent.
func (g *Graph) DeleteEdge(ctx context.Context, t entities.EdgeType, from, to string) error {
	rel, ok := relTypes[t]
	if !ok {
		return fmt.Errorf("unknown edge type %q", t)
	}

	query := fmt.Sprintf(`MATCH (a:Profile {id: $from})-[r:%s]->(b:Profile {id: $to}) DELETE r`, rel)

	return g.write(ctx, query, map[string]any{"from": from, "to": to})
}

func (g *Graph) listProfiles(ctx context.Context, query string, params map[string]any) ([]entities.ShortProfile, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		pp := make([]entities.ShortProfile, 0)
		for res.Next(ctx) {
			pp = append(pp, shortProfileFromRecord(res.Record()))
		}
		return pp, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return out.([]entities.ShortProfile), nil
}

// ListOutgoing returns profiles the given one points to with the edge type.
func (g *Graph) ListOutgoing(ctx context.Context, t entities.EdgeType, from string) ([]entities.ShortProfile, error) {
	rel, ok := relTypes[t]
	if !ok {
		return nil, fmt.Errorf("unknown edge type %q", t)
	}

	query := fmt.Sprintf(`MATCH (:Profile {id: $id})-[:%s]->(p:Profile) %s`, rel, shortProfileReturn)

	return g.listProfiles(ctx, query, map[string]any{"id": from})
}

// ListIncoming returns profiles pointing to the given one with the edge type.
func (g *Graph) ListIncoming(ctx context.Context, t entities.EdgeType, to string) ([]entities.ShortProfile, error) {
	rel, ok := relTypes[t]
	if !ok {
		return nil, fmt.Errorf("unknown edge type %q", t)
	}

	query := fmt.Sprintf(`MATCH (:Profile {id: $id})<-[:%s]-(p:Profile) %s`, rel, shortProfileReturn)

	return g.listProfiles(ctx, query, map[string]any{"id": to})
}

// GetFameRating returns profile's fame rating.
func (g *Graph) GetFameRating(ctx context.Context, id string) (int, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (p:Profile {id: $id}) RETURN coalesce(p.fame_rating, 0) AS rating`,
			map[string]any{"id": id})
		if err != nil {
			return nil, err
		}

		if res.Next(ctx) {
			v, _ := res.Record().Get("rating")
			return int(v.(int64)), nil
		}
		return nil, res.Err()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to query fame rating: %w", err)
	}

	if out == nil {
		return 0, storage.ErrNotFound
	}
	return out.(int), nil
}

// SetFameRating writes profile's fame rating.
func (g *Graph) SetFameRating(ctx context.Context, id string, rating int) error {
	return g.write(ctx, `MATCH (p:Profile {id: $id}) SET p.fame_rating = $rating`,
		map[string]any{"id": id, "rating": rating})
}

// GetPhotos returns profile's photo slots.
func (g *Graph) GetPhotos(ctx context.Context, id string) (entities.PhotoSlots, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (p:Profile {id: $id}) RETURN p.photos AS photos`,
			map[string]any{"id": id})
		if err != nil {
			return nil, err
		}

		if res.Next(ctx) {
			var photos entities.PhotoSlots
			if raw, ok := res.Record().Get("photos"); ok && raw != nil {
				for i, v := range raw.([]any) {
					if i >= entities.PhotoSlotsCount {
						break
					}
					photos[i], _ = v.(string)
				}
			}
			return photos, nil
		}
		return nil, res.Err()
	})
	if err != nil {
		return entities.PhotoSlots{}, fmt.Errorf("failed to query photos: %w", err)
	}

	if out == nil {
		return entities.PhotoSlots{}, storage.ErrNotFound
	}
	return out.(entities.PhotoSlots), nil
}

// SetPhotoAt writes a single photo slot.
func (g *Graph) SetPhotoAt(ctx context.Context, id string, index int, name string) error {
	return g.write(ctx, `
		MATCH (p:Profile {id: $id})
		SET p.photos = [i IN range(0, $last) |
			CASE WHEN i = $index THEN $name ELSE coalesce(p.photos[i], '') END]`,
		map[string]any{"id": id, "index": index, "name": name, "last": entities.PhotoSlotsCount - 1})
}

// SetPhotos replaces the whole photo slots array.
func (g *Graph) SetPhotos(ctx context.Context, id string, photos entities.PhotoSlots) error {
	pp := make([]any, len(photos))
	for i, v := range photos {
		pp[i] = v
	}

	return g.write(ctx, `MATCH (p:Profile {id: $id}) SET p.photos = $photos`,
		map[string]any{"id": id, "photos": pp})
}

// GetTagCount returns how many tags the profile carries.
func (g *Graph) GetTagCount(ctx context.Context, id string) (int, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (:Profile {id: $id})-[:HAS_TAG]->(t:Tag) RETURN count(t) AS cnt`,
			map[string]any{"id": id})
		if err != nil {
			return nil, err
		}

		if res.Next(ctx) {
			v, _ := res.Record().Get("cnt")
			return int(v.(int64)), nil
		}
		return 0, res.Err()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}

	cnt, _ := out.(int)
	return cnt, nil
}

// AddTag merges the shared tag node by name and links the profile to it.
func (g *Graph) AddTag(ctx context.Context, id, name string) error {
	return g.write(ctx, `
		MATCH (p:Profile {id: $id})
		MERGE (t:Tag {name: $name})
		MERGE (p)-[:HAS_TAG]->(t)`,
		map[string]any{"id": id, "name": name})
}

// RemoveTag unlinks the tag from the profile, keeping the shared tag node.
func (g *Graph) RemoveTag(ctx context.Context, id, name string) error {
	return g.write(ctx, `MATCH (:Profile {id: $id})-[r:HAS_TAG]->(:Tag {name: $name}) DELETE r`,
		map[string]any{"id": id, "name": name})
}

// ListTags returns profile's tag names.
func (g *Graph) ListTags(ctx context.Context, id string) ([]string, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (:Profile {id: $id})-[:HAS_TAG]->(t:Tag) RETURN t.name AS name ORDER BY t.name`,
			map[string]any{"id": id})
		if err != nil {
			return nil, err
		}

		names := make([]string, 0)
		for res.Next(ctx) {
			v, _ := res.Record().Get("name")
			names = append(names, v.(string))
		}
		return names, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return out.([]string), nil
}

// ListPopularTags returns tags ranked by how many profiles carry them.
func (g *Graph) ListPopularTags(ctx context.Context, limit int) ([]entities.TagCount, error) {
	out, err := g.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (t:Tag)<-[:HAS_TAG]-(p:Profile)
			RETURN t.name AS name, count(p) AS cnt
			ORDER BY cnt DESC, name
			LIMIT $limit`,
			map[string]any{"limit": limit})
		if err != nil {
			return nil, err
		}

		tt := make([]entities.TagCount, 0)
		for res.Next(ctx) {
			name, _ := res.Record().Get("name")
			cnt, _ := res.Record().Get("cnt")
			tt = append(tt, entities.TagCount{
				Name:  name.(string),
				Count: int(cnt.(int64)),
			})
		}
		return tt, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list popular tags: %w", err)
	}

	return out.([]entities.TagCount), nil
}
