package loans

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"tv_reminders/internal/config"
	"tv_reminders/internal/logger"

	"go.uber.org/zap"
)

// Loan — разобранная запись о выдаче оборудования.
// Исходная строка приходит из внешней системы в виде "T Student - Card Reader (0d)".
type Loan struct {
	Student  string `json:"student"`
	Item     string `json:"item"`
	Days     string `json:"days"`
	Original string `json:"original"`
}

// ParseLoanString разбирает свободный текст выдачи на студента, предмет и срок.
// Формат терпимый к мусору: отсутствие скобок, разделителя или пустая строка
// дают частичную запись, паники не бывает.
func ParseLoanString(raw string) Loan {
	trimmed := strings.TrimSpace(raw)

	days := ""
	remainder := trimmed
	if open := strings.LastIndex(trimmed, "("); open >= 0 {
		if end := strings.Index(trimmed[open:], ")"); end > 0 {
			days = trimmed[open+1 : open+end]
			remainder = strings.TrimSpace(trimmed[:open])
		}
	}

	student := remainder
	item := "Unknown"
	if sep := strings.Index(remainder, " - "); sep >= 0 {
		student = remainder[:sep]
		item = strings.TrimSpace(remainder[sep+3:])
	}

	if strings.TrimSpace(student) == "" {
		student = "Unknown"
	}

	return Loan{Student: student, Item: item, Days: days, Original: raw}
}

type activeLoansResponse struct {
	ActiveLoans []string `json:"active_loans"`
}

// FetchActiveLoans запрашивает список активных выдач у внешнего сервиса.
// Любая ошибка (сеть, таймаут, не-2xx, битый JSON) логируется и даёт пустой
// список — экран должен продолжать показывать напоминания.
func FetchActiveLoans() []string {
	client := &http.Client{Timeout: time.Duration(config.Cfg.HTTPTimeout) * time.Second}

	logger.L.Info("Запрос активных выдач", zap.String("url", config.Cfg.LoansAPIURL))

	resp, err := client.Get(config.Cfg.LoansAPIURL)
	if err != nil {
		logger.L.Error("Ошибка запроса к сервису выдач", zap.Error(err))
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L.Error("Сервис выдач вернул ошибку", zap.Int("status", resp.StatusCode))
		return []string{}
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		logger.L.Error("Ошибка чтения ответа сервиса выдач", zap.Error(err))
		return []string{}
	}

	var parsed activeLoansResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.L.Error("Ошибка декодирования ответа сервиса выдач", zap.Error(err))
		return []string{}
	}

	if parsed.ActiveLoans == nil {
		return []string{}
	}

	logger.L.Info("Активные выдачи получены", zap.Int("count", len(parsed.ActiveLoans)))
	return parsed.ActiveLoans
}
