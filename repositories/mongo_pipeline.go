package repositories

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-taxonomy/query"
)

const (
	relevanceField = "relevance"
	randomField    = "_rand"
)

// BuildPipeline translates a candidate query into an aggregation pipeline:
// $match on the conjunction, then the ordering stages, then $limit.
func BuildPipeline(q *query.Query) (mongo.Pipeline, error) {
	match, err := MatchFilter(q.Conditions())
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}

	o := q.Ordering()
	dir := 1
	if o.Desc {
		dir = -1
	}
	switch o.Field {
	case query.SortRelevance:
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.M{relevanceField: sharedTagCountExpr(o.RelevanceTagIDs)}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: relevanceField, Value: dir}, {Key: "_id", Value: 1}}}},
		)
	case query.SortRandom:
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.M{randomField: bson.M{"$rand": bson.M{}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: randomField, Value: 1}}}},
		)
	case query.SortPublishedAt, query.SortTitle:
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.D{{Key: string(o.Field), Value: dir}, {Key: "_id", Value: 1}}}},
		)
	}

	if n := q.Limit(); n > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(n)}})
	}
	return pipeline, nil
}

// MatchFilter ANDs the given predicates into one filter document.
func MatchFilter(conds []query.Predicate) (bson.M, error) {
	if len(conds) == 0 {
		return bson.M{}, nil
	}
	and := make([]bson.M, 0, len(conds))
	for _, c := range conds {
		f, err := predicateFilter(c)
		if err != nil {
			return nil, err
		}
		and = append(and, f)
	}
	return bson.M{"$and": and}, nil
}

func predicateFilter(p query.Predicate) (bson.M, error) {
	switch w := p.(type) {
	case query.Nothing:
		// every document has an _id
		return bson.M{"_id": bson.M{"$exists": false}}, nil
	case query.Published:
		return bson.M{
			"published":    true,
			"published_at": bson.M{"$ne": nil, "$lte": w.At},
		}, nil
	case query.IDNotEqual:
		return bson.M{"_id": bson.M{"$ne": w.ID}}, nil
	case query.IDIn:
		return bson.M{"_id": bson.M{"$in": nonNil(w.IDs)}}, nil
	case query.PublishedBetween:
		cond := bson.M{"$ne": nil}
		if w.From != nil {
			cond["$gte"] = *w.From
		}
		if w.To != nil {
			cond["$lte"] = *w.To
		}
		return bson.M{"published_at": cond}, nil
	case query.HasAnyTag:
		return bson.M{"tag_ids": bson.M{"$in": nonNil(w.TagIDs)}}, nil
	case query.InCategories:
		return bson.M{"category_ids": bson.M{"$in": nonNil(w.CategoryIDs)}}, nil
	case query.SharedTagsAtLeast:
		return bson.M{"$expr": bson.M{"$gte": bson.A{sharedTagCountExpr(w.TagIDs), w.Min}}}, nil
	case query.Not:
		inner, err := predicateFilter(w.P)
		if err != nil {
			return nil, err
		}
		return bson.M{"$nor": []bson.M{inner}}, nil
	default:
		return nil, fmt.Errorf("unsupported predicate %T (%s)", p, p.Kind())
	}
}

// sharedTagCountExpr evaluates, per document, how many of its tag_ids are in tagIDs.
func sharedTagCountExpr(tagIDs []string) bson.M {
	return bson.M{"$size": bson.M{"$setIntersection": bson.A{
		bson.M{"$ifNull": bson.A{"$tag_ids", bson.A{}}},
		nonNil(tagIDs),
	}}}
}

// nonNil keeps empty lists encoded as [] rather than null, so $in matches nothing.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
