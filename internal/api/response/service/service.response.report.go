package responsesvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	responsemodels "github.com/batkt/sudalgaaQRBackend/internal/api/response/models"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
)

// aggregate runs a pipeline and decodes the result documents.
func (s *ResponseService) aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error) {
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// AverageByDepartment averages feedback scores per department across every
// level of the stored assignment paths.
func (s *ResponseService) AverageByDepartment(ctx context.Context) ([]bson.M, error) {
	return s.aggregate(ctx, []bson.M{
		{"$match": bson.M{"kind": responsemodels.ResponseKindFeedback}},
		{"$unwind": "$employee.departmentAssignments"},
		{"$group": bson.M{
			"_id":            "$employee.departmentAssignments.departmentId",
			"departmentName": bson.M{"$first": "$employee.departmentAssignments.departmentName"},
			"level":          bson.M{"$first": "$employee.departmentAssignments.level"},
			"averageScore":   bson.M{"$avg": "$score"},
			"responseCount":  bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"level": 1, "averageScore": -1}},
	})
}

// AverageByEmployee averages feedback scores per rated employee.
func (s *ResponseService) AverageByEmployee(ctx context.Context) ([]bson.M, error) {
	return s.aggregate(ctx, []bson.M{
		{"$match": bson.M{"kind": responsemodels.ResponseKindFeedback}},
		{"$group": bson.M{
			"_id":           "$employee.employeeId",
			"name":          bson.M{"$first": "$employee.name"},
			"averageScore":  bson.M{"$avg": "$score"},
			"responseCount": bson.M{"$sum": 1},
			"negativeCount": bson.M{"$sum": bson.M{"$cond": bson.A{"$negative", 1, 0}}},
		}},
		{"$sort": bson.M{"averageScore": -1}},
	})
}

// AverageByQuestion averages answer scores per question of one set.
func (s *ResponseService) AverageByQuestion(ctx context.Context, questionSetID primitive.ObjectID) ([]bson.M, error) {
	return s.aggregate(ctx, []bson.M{
		{"$match": bson.M{"questionSetId": questionSetID}},
		{"$unwind": "$answers"},
		{"$match": bson.M{"answers.score": bson.M{"$gt": 0}}},
		{"$group": bson.M{
			"_id":          "$answers.questionIndex",
			"averageScore": bson.M{"$avg": "$answers.score"},
			"answerCount":  bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
}

// DailyCounts counts submissions per calendar day over the trailing window.
func (s *ResponseService) DailyCounts(ctx context.Context, days int) ([]bson.M, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days).UnixMilli()

	return s.aggregate(ctx, []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$createdAt"},
			}},
			"count":         bson.M{"$sum": 1},
			"negativeCount": bson.M{"$sum": bson.M{"$cond": bson.A{"$negative", 1, 0}}},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
}

// Dashboard returns the landing page aggregates in one round trip: volume and
// sentiment splits for the current and previous month.
func (s *ResponseService) Dashboard(ctx context.Context) (bson.M, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := monthStart.AddDate(0, -1, 0)

	currentRange := bson.M{"createdAt": bson.M{"$gte": monthStart.UnixMilli()}}
	previousRange := bson.M{"createdAt": bson.M{
		"$gte": previousStart.UnixMilli(),
		"$lt":  monthStart.UnixMilli(),
	}}

	results, err := s.aggregate(ctx, []bson.M{
		{"$facet": bson.M{
			"currentMonth":  []bson.M{{"$match": currentRange}, {"$count": "count"}},
			"previousMonth": []bson.M{{"$match": previousRange}, {"$count": "count"}},
			"negative": []bson.M{
				{"$match": bson.M{"negative": true}},
				{"$count": "count"},
			},
			"positive": []bson.M{
				{"$match": bson.M{"negative": false, "kind": responsemodels.ResponseKindFeedback}},
				{"$count": "count"},
			},
			"total": []bson.M{{"$count": "count"}},
		}},
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return bson.M{}, nil
	}
	return results[0], nil
}
