package responsesvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	employeesvc "github.com/batkt/sudalgaaQRBackend/internal/api/employee/service"
	responsedto "github.com/batkt/sudalgaaQRBackend/internal/api/response/dto"
	responsemodels "github.com/batkt/sudalgaaQRBackend/internal/api/response/models"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	settingssvc "github.com/batkt/sudalgaaQRBackend/internal/api/settings/service"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/logger"
	"github.com/batkt/sudalgaaQRBackend/internal/notification"
	"github.com/batkt/sudalgaaQRBackend/internal/utility"
)

// ResponseService manages submitted feedback and ratings, and sends negative
// feedback alerts.
type ResponseService struct {
	basesvc.BaseServiceMongoImpl[responsemodels.Response]
	EmployeeService *employeesvc.EmployeeService
	SettingService  *settingssvc.SettingService
	KeywordService  *settingssvc.KeywordService
	SMS             *notification.SMSClient
	Email           *notification.EmailClient
}

// NewResponseService creates a ResponseService.
func NewResponseService() (*ResponseService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Responses)
	if !exist {
		return nil, fmt.Errorf("failed to get responses collection: %v", common.ErrNotFound)
	}
	employeeService, err := employeesvc.NewEmployeeService()
	if err != nil {
		return nil, err
	}
	settingService, err := settingssvc.NewSettingService()
	if err != nil {
		return nil, err
	}
	keywordService, err := settingssvc.NewKeywordService()
	if err != nil {
		return nil, err
	}
	cfg := global.ServerConfig
	return &ResponseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[responsemodels.Response](collection),
		EmployeeService:      employeeService,
		SettingService:       settingService,
		KeywordService:       keywordService,
		SMS:                  notification.NewSMSClient(cfg.SMS_GatewayURL),
		Email:                notification.NewEmailClient(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_User, cfg.SMTP_Password),
	}, nil
}

// averageScore averages the scored answers; answers without a score do not
// count.
func averageScore(answers []responsemodels.Answer) float64 {
	var sum float64
	var n int
	for _, answer := range answers {
		if answer.Score > 0 {
			sum += answer.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// isNegative classifies a submission: score at or below the threshold, or a
// comment containing any negative keyword.
func (s *ResponseService) isNegative(ctx context.Context, score float64, comment string, setting settingsmodels.Setting) bool {
	if score > 0 && score <= setting.NegativeThreshold {
		return true
	}
	if comment == "" {
		return false
	}

	keywords, err := s.KeywordService.Find(ctx, bson.M{"tone": settingsmodels.KeywordToneNegative}, nil)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("keyword lookup failed")
		return false
	}
	lowerComment := strings.ToLower(comment)
	for _, keyword := range keywords {
		if keyword.Phrase != "" && strings.Contains(lowerComment, strings.ToLower(keyword.Phrase)) {
			return true
		}
	}
	return false
}

// SubmitFeedback stores one public feedback submission. A submitter whose
// phone belongs to the rated employee is rejected. Negative submissions
// trigger an SMS and optional email alert; alert failures are logged, never
// returned to the submitter.
func (s *ResponseService) SubmitFeedback(ctx context.Context, input *responsedto.FeedbackInput) (responsemodels.Response, error) {
	var zero responsemodels.Response

	employee, err := s.EmployeeService.FindOneById(ctx, utility.String2ObjectID(input.EmployeeID))
	if err != nil {
		return zero, err
	}
	if input.SubmitterPhone != "" && employee.Phone != "" && input.SubmitterPhone == employee.Phone {
		return zero, common.NewError(common.ErrCodeBusinessOperation, "Өөрийгөө үнэлэх боломжгүй", common.StatusBadRequest, nil)
	}

	setting, err := s.SettingService.GetCurrent(ctx)
	if err != nil {
		return zero, err
	}

	score := averageScore(input.Answers)
	response := responsemodels.Response{
		Kind:          responsemodels.ResponseKindFeedback,
		QuestionSetID: utility.String2ObjectID(input.QuestionSetID),
		Employee: responsemodels.EmployeeSnapshot{
			EmployeeID:            employee.ID,
			Name:                  employee.Name,
			DepartmentAssignments: employee.DepartmentAssignments,
		},
		Answers:        input.Answers,
		Comment:        input.Comment,
		Score:          score,
		Negative:       s.isNegative(ctx, score, input.Comment, setting),
		SubmitterPhone: input.SubmitterPhone,
	}

	created, err := s.InsertOne(ctx, response)
	if err != nil {
		return zero, err
	}

	if created.Negative {
		s.sendNegativeAlert(ctx, created, setting)
	}
	return created, nil
}

// sendNegativeAlert notifies the configured recipients about a negative
// submission.
func (s *ResponseService) sendNegativeAlert(ctx context.Context, response responsemodels.Response, setting settingsmodels.Setting) {
	text := fmt.Sprintf("Сөрөг үнэлгээ: %s (%s), оноо %.1f", response.Employee.Name, pathOf(response), response.Score)

	if err := s.SMS.Send(ctx, setting.AlertPhones, text); err != nil {
		logger.GetErrorLogger().WithError(err).Error("negative feedback sms failed")
	}
	if err := s.Email.Send(setting.AlertEmails, "Сөрөг үнэлгээний мэдэгдэл", text); err != nil {
		logger.GetErrorLogger().WithError(err).Error("negative feedback email failed")
	}
}

func pathOf(response responsemodels.Response) string {
	names := make([]string, 0, len(response.Employee.DepartmentAssignments))
	for _, a := range response.Employee.DepartmentAssignments {
		names = append(names, a.DepartmentName)
	}
	if len(names) == 0 {
		return "хэлтэсгүй"
	}
	return strings.Join(names, " / ")
}

// SubmitRating upserts the logged-in employee's rating for a question set,
// keeping at most one rating per employee per set.
func (s *ResponseService) SubmitRating(ctx context.Context, employeeID string, input *responsedto.RatingInput) (responsemodels.Response, error) {
	var zero responsemodels.Response

	employee, err := s.EmployeeService.FindOneById(ctx, utility.String2ObjectID(employeeID))
	if err != nil {
		return zero, err
	}

	questionSetID := utility.String2ObjectID(input.QuestionSetID)
	filter := bson.M{
		"kind":                responsemodels.ResponseKindRating,
		"questionSetId":       questionSetID,
		"employee.employeeId": employee.ID,
	}

	rating := responsemodels.Response{
		Kind:          responsemodels.ResponseKindRating,
		QuestionSetID: questionSetID,
		Employee: responsemodels.EmployeeSnapshot{
			EmployeeID:            employee.ID,
			Name:                  employee.Name,
			DepartmentAssignments: employee.DepartmentAssignments,
		},
		Answers: input.Answers,
		Comment: input.Comment,
		Score:   averageScore(input.Answers),
	}

	return s.Upsert(ctx, filter, rating)
}
