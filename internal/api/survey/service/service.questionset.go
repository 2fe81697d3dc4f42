package surveysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	surveymodels "github.com/batkt/sudalgaaQRBackend/internal/api/survey/models"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// QuestionSetService manages survey question sets.
type QuestionSetService struct {
	basesvc.BaseServiceMongoImpl[surveymodels.QuestionSet]
}

// NewQuestionSetService creates a QuestionSetService.
func NewQuestionSetService() (*QuestionSetService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.QuestionSets)
	if !exist {
		return nil, fmt.Errorf("failed to get question_sets collection: %v", common.ErrNotFound)
	}
	return &QuestionSetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[surveymodels.QuestionSet](collection),
	}, nil
}

// Activate marks one set active and deactivates every other set.
func (s *QuestionSetService) Activate(ctx context.Context, id primitive.ObjectID) (surveymodels.QuestionSet, error) {
	var zero surveymodels.QuestionSet

	if _, err := s.FindOneById(ctx, id); err != nil {
		return zero, err
	}

	if _, err := s.UpdateMany(ctx, bson.M{"_id": bson.M{"$ne": id}}, bson.M{"active": false}, nil); err != nil {
		return zero, err
	}
	return s.UpdateById(ctx, id, map[string]interface{}{"active": true})
}

// GetActive returns the currently active set.
func (s *QuestionSetService) GetActive(ctx context.Context) (surveymodels.QuestionSet, error) {
	return s.FindOne(ctx, bson.M{"active": true}, nil)
}
