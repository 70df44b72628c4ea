package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/trivia-service/internal/adapters/clients"
	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

const (
	opentdbQuestionsPath  = "/api.php"
	opentdbCategoriesPath = "/api_category.php"
)

// Open Trivia DB response_code values.
const (
	opentdbSuccess         = 0
	opentdbNoResults       = 1
	opentdbInvalidParam    = 2
	opentdbTokenNotFound   = 3
	opentdbTokenEmpty      = 4
	opentdbRateLimit       = 5
	opentdbMaxAmountPerHit = 50
)

// OpenTDBSourceConfig holds OpenTDBSource dependencies.
type OpenTDBSourceConfig struct {
	Client      *clients.Client
	ServiceName string
	Logger      *slog.Logger
}

// OpenTDBSource fetches multiple-choice questions from the Open Trivia DB.
// It implements ports.QuestionSource and ports.HealthChecker.
type OpenTDBSource struct {
	client      *clients.Client
	serviceName string
	logger      *slog.Logger
}

var (
	_ ports.QuestionSource = (*OpenTDBSource)(nil)
	_ ports.HealthChecker  = (*OpenTDBSource)(nil)
)

// NewOpenTDBSource panics if Client is nil.
func NewOpenTDBSource(cfg OpenTDBSourceConfig) *OpenTDBSource {
	if cfg.Client == nil {
		panic("acl: NewOpenTDBSource requires a client")
	}

	name := cfg.ServiceName
	if name == "" {
		name = "opentdb"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &OpenTDBSource{
		client:      cfg.Client,
		serviceName: name,
		logger:      logger.With(slog.String("component", "acl.OpenTDBSource")),
	}
}

type opentdbResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []opentdbQuestion `json:"results"`
}

// FetchQuestions requests amount questions (clamped to 1..50) and returns
// the translatable ones.
func (s *OpenTDBSource) FetchQuestions(ctx context.Context, amount int) ([]ports.ExternalQuestion, error) {
	amount = min(max(amount, 1), opentdbMaxAmountPerHit)
	logger := logging.FromContextOr(ctx, s.logger)

	logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", opentdbQuestionsPath))

	query := url.Values{
		"amount": {strconv.Itoa(amount)},
		"type":   {"multiple"},
	}

	var resp opentdbResponse
	if err := s.client.GetJSON(ctx, opentdbQuestionsPath, query, &resp); err != nil {
		return nil, MapClientError(err, s.serviceName, "fetch questions")
	}

	if err := s.mapResponseCode(resp.ResponseCode); err != nil {
		return nil, err
	}

	questions, rejected := TranslateSlice(resp.Results, translateQuestion)

	logger.DebugContext(ctx, "fetched upstream questions",
		slog.Int("requested", amount),
		slog.Int("received", len(resp.Results)),
		slog.Int("rejected", rejected),
	)

	return questions, nil
}

func (s *OpenTDBSource) mapResponseCode(code int) error {
	switch code {
	case opentdbSuccess:
		return nil
	case opentdbNoResults:
		return domain.NewNotFoundError("upstream questions", "")
	case opentdbRateLimit:
		return domain.NewUnavailableError(s.serviceName, "rate limited")
	case opentdbInvalidParam, opentdbTokenNotFound, opentdbTokenEmpty:
		return domain.NewUnavailableError(s.serviceName, fmt.Sprintf("rejected request with code %d", code))
	default:
		return domain.NewUnavailableError(s.serviceName, fmt.Sprintf("unknown response code %d", code))
	}
}

// Name implements ports.HealthChecker.
func (s *OpenTDBSource) Name() string {
	return s.serviceName
}

// Check verifies the upstream answers its category listing.
func (s *OpenTDBSource) Check(ctx context.Context) error {
	var body struct {
		Categories []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"trivia_categories"`
	}

	if err := s.client.GetJSON(ctx, opentdbCategoriesPath, nil, &body); err != nil {
		return MapClientError(err, s.serviceName, "list categories")
	}

	return nil
}
