package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/sneezelab/SneezeBot/app/models"
	"github.com/sneezelab/SneezeBot/app/repository"
	"github.com/sneezelab/SneezeBot/internal/pkg/chart"
	"github.com/sneezelab/SneezeBot/internal/pkg/export"
	"github.com/sneezelab/SneezeBot/internal/pkg/period"
	"github.com/sneezelab/SneezeBot/internal/pkg/stats"
)

var (
	// ErrNegativeCount reports a count below zero, rejected before it
	// reaches the store.
	ErrNegativeCount = errors.New("count must not be negative")
	// ErrNotAuthorized reports a non-admin invoking an admin command.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrNotNumber reports a count argument that is not an integer.
	ErrNotNumber = errors.New("count is not a number")
)

const (
	msgNegative      = "❌ Количество не может быть отрицательным!"
	msgNotNumber     = "❌ Пожалуйста, введите число!"
	msgInvalidRange  = "❌ Начальная дата должна быть раньше конечной!"
	msgInvalidMonth  = "❌ Месяц должен быть от 1 до 12!"
	msgNotAuthorized = "⛔ Эта команда доступна только администраторам."
	msgStorage       = "❌ Ошибка при работе с базой данных. Попробуйте ещё раз."

	helpText = "👋 Привет! Я бот для отслеживания чиханий.\n\n" +
		"Доступные команды:\n" +
		"/add <количество> - добавить количество чиханий за сегодня\n" +
		"/stats - статистика за текущую неделю (текст)\n" +
		"/stats week - статистика за неделю\n" +
		"/stats month - статистика за текущий месяц\n" +
		"/stats <месяц> <год> - статистика за конкретный месяц (например: /stats 12 2024)\n" +
		"/stats <дата1> <дата2> - статистика за период (формат: ДД.ММ.ГГГГ)\n" +
		"/chart - график за текущую неделю\n" +
		"/chart week/month/<месяц> <год>/<дата1> <дата2> - график за период\n" +
		"/edit <дата> <количество> - редактировать данные за дату (формат: ДД.ММ.ГГГГ)\n" +
		"/today - посмотреть количество чиханий за сегодня\n" +
		"\n" +
		"Также вы можете просто написать число - оно будет записано как количество чиханий за сегодня.\n\n" +
		"Или используйте кнопки внизу экрана:"

	addUsage = "❌ Пожалуйста, укажите количество чиханий.\nПример: /add 5"

	periodUsage = "❌ Неверный формат. Используйте:\n" +
		"/stats - за неделю\n" +
		"/stats week - за неделю\n" +
		"/stats month - за месяц\n" +
		"/stats <месяц> <год> - за конкретный месяц\n" +
		"/stats <дата1> <дата2> - за период (формат: ДД.ММ.ГГГГ)"

	editUsage = "❌ Неверный формат команды.\n" +
		"Используйте: /edit <дата> <количество>\n" +
		"Формат даты: ДД.ММ.ГГГГ\n" +
		"Пример: /edit 15.12.2024 10"

	adminUsage = "❌ Неверный формат. Используйте:\n" +
		"/admin_stats - за всё время\n" +
		"/admin_stats <дата1> <дата2> - за период (формат: ДД.ММ.ГГГГ)"
)

// Reply is a transport-agnostic outbound message: text, or a photo, or a
// document, all optionally with a caption.
type Reply struct {
	Text         string
	Photo        []byte
	Caption      string
	Document     []byte
	DocumentName string
}

func (r Reply) Empty() bool {
	return r.Text == "" && len(r.Photo) == 0 && len(r.Document) == 0
}

// Handler executes decoded commands against the record store. The
// repository and the admin allow-list are injected at construction.
type Handler struct {
	repo   repository.SneezeRepository
	admins map[int64]struct{}
}

func NewHandler(repo repository.SneezeRepository, admins map[int64]struct{}) *Handler {
	return &Handler{repo: repo, admins: admins}
}

// Handle dispatches one decoded command. The reference "today" comes from
// the inbound message timestamp, never from server wall clock. Every error
// of the taxonomy is converted to a user-visible message here; nothing
// propagates to the transport loop.
func (h *Handler) Handle(cmd Command, userID int64, when time.Time) Reply {
	var reply Reply
	var err error

	switch cmd.Kind {
	case Start:
		reply = Reply{Text: helpText}
	case Add, Number:
		reply, err = h.handleAdd(userID, when, cmd.Args)
	case Sneeze:
		reply, err = h.handleSneeze(userID, when)
	case Stats:
		reply, err = h.handleStats(userID, when, cmd.Args)
	case Chart:
		reply, err = h.handleChart(userID, when, cmd.Args)
	case Edit:
		reply, err = h.handleEdit(userID, cmd.Args)
	case Today:
		reply, err = h.handleToday(userID, when)
	case AdminStats:
		reply, err = h.handleAdminStats(userID, cmd.Args)
	case AdminExport:
		reply, err = h.handleAdminExport(userID, cmd.Args)
	default:
		return Reply{}
	}

	if err != nil {
		return Reply{Text: h.errorText(cmd.Kind, err)}
	}
	return reply
}

func (h *Handler) handleAdd(userID int64, when time.Time, args []string) (Reply, error) {
	if len(args) != 1 {
		return Reply{}, fmt.Errorf("add: %w", period.ErrInvalidFormat)
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return Reply{}, ErrNotNumber
	}
	if count < 0 {
		return Reply{}, ErrNegativeCount
	}

	day := when.Format(models.DayFormat)
	if err := h.repo.Upsert(userID, day, count); err != nil {
		return Reply{}, err
	}

	return Reply{Text: fmt.Sprintf(
		"✅ Записано: %d чиханий за сегодня (%s)\n🤧 Будь здоров!",
		count, when.Format("02.01.2006"),
	)}, nil
}

func (h *Handler) handleSneeze(userID int64, when time.Time) (Reply, error) {
	day := when.Format(models.DayFormat)
	count, err := h.repo.Increment(userID, day)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Text: fmt.Sprintf(
		"✅ Записано чихание!\n📊 Сегодня (%s): %d чиханий\n🤧 Будь здоров!",
		when.Format("02.01.2006"), count,
	)}, nil
}

func (h *Handler) handleStats(userID int64, when time.Time, args []string) (Reply, error) {
	rng, err := period.Resolve(args, when)
	if err != nil {
		return Reply{}, err
	}

	rows, err := h.repo.RangeScan(userID, rng.StartDay(), rng.EndDay())
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: stats.FormatUser(rows, rng.Label)}, nil
}

func (h *Handler) handleChart(userID int64, when time.Time, args []string) (Reply, error) {
	rng, err := period.Resolve(args, when)
	if err != nil {
		return Reply{}, err
	}

	rows, err := h.repo.RangeScan(userID, rng.StartDay(), rng.EndDay())
	if err != nil {
		return Reply{}, err
	}
	if len(rows) == 0 {
		return Reply{Text: fmt.Sprintf("❌ Нет данных за %s для построения графика", rng.Label)}, nil
	}

	img, err := chart.Render(rows, rng.Label)
	if err != nil {
		log.Printf("Failed to render chart for user %d: %v", userID, err)
		return Reply{Text: fmt.Sprintf("❌ Не удалось создать график за %s", rng.Label)}, nil
	}

	return Reply{
		Photo:   img,
		Caption: fmt.Sprintf("📈 График чиханий за %s", rng.Label),
	}, nil
}

func (h *Handler) handleEdit(userID int64, args []string) (Reply, error) {
	if len(args) != 2 {
		return Reply{}, fmt.Errorf("edit: %w", period.ErrInvalidFormat)
	}
	day, err := period.ParseDay(args[0])
	if err != nil {
		return Reply{}, err
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return Reply{}, fmt.Errorf("edit: %w", period.ErrInvalidFormat)
	}
	if count < 0 {
		return Reply{}, ErrNegativeCount
	}

	if err := h.repo.Upsert(userID, day.Format(models.DayFormat), count); err != nil {
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("✅ Обновлено: %d чиханий за %s", count, args[0])}, nil
}

func (h *Handler) handleToday(userID int64, when time.Time) (Reply, error) {
	day := when.Format(models.DayFormat)
	count, found, err := h.repo.GetDay(userID, day)
	if err != nil {
		return Reply{}, err
	}

	if !found {
		return Reply{Text: fmt.Sprintf(
			"📅 За сегодня (%s) записей нет.\nИспользуйте /add <количество> или просто напишите число.",
			when.Format("02.01.2006"),
		)}, nil
	}
	return Reply{Text: fmt.Sprintf(
		"📅 Сегодня (%s): %d чиханий",
		when.Format("02.01.2006"), count,
	)}, nil
}

func (h *Handler) handleAdminStats(userID int64, args []string) (Reply, error) {
	if err := h.authorize(userID); err != nil {
		return Reply{}, err
	}

	rng, err := period.ResolveAdmin(args)
	if err != nil {
		return Reply{}, err
	}

	totals, err := h.repo.GroupTotals(bounds(rng))
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: stats.FormatAdmin(totals, rng.Label)}, nil
}

func (h *Handler) handleAdminExport(userID int64, args []string) (Reply, error) {
	if err := h.authorize(userID); err != nil {
		return Reply{}, err
	}

	rng, err := period.ResolveAdmin(args)
	if err != nil {
		return Reply{}, err
	}

	startDay, endDay := bounds(rng)
	totals, err := h.repo.GroupTotals(startDay, endDay)
	if err != nil {
		return Reply{}, err
	}
	details, err := h.repo.AllDetailed(startDay, endDay)
	if err != nil {
		return Reply{}, err
	}

	buf, err := export.Workbook(totals, details)
	if err != nil {
		return Reply{}, err
	}
	return Reply{
		Document:     buf.Bytes(),
		DocumentName: "sneezes_export.xlsx",
		Caption:      fmt.Sprintf("📄 Экспорт статистики за %s", rng.Label),
	}, nil
}

// authorize checks the allow-list before any store access happens.
func (h *Handler) authorize(userID int64) error {
	if _, ok := h.admins[userID]; !ok {
		return ErrNotAuthorized
	}
	return nil
}

func bounds(rng period.Range) (string, string) {
	if rng.Unbounded() {
		return "", ""
	}
	return rng.StartDay(), rng.EndDay()
}

// errorText translates a taxonomy error into the user-facing message for
// the command it came from. Storage failures are logged with detail and
// reported generically.
func (h *Handler) errorText(kind Kind, err error) string {
	switch {
	case errors.Is(err, ErrNotAuthorized):
		return msgNotAuthorized
	case errors.Is(err, ErrNegativeCount):
		return msgNegative
	case errors.Is(err, ErrNotNumber):
		return msgNotNumber
	case errors.Is(err, period.ErrInvalidRange):
		return msgInvalidRange
	case errors.Is(err, period.ErrInvalidMonth):
		return msgInvalidMonth
	case errors.Is(err, period.ErrInvalidFormat):
		switch kind {
		case Add, Number:
			return addUsage
		case Edit:
			return editUsage
		case AdminStats, AdminExport:
			return adminUsage
		default:
			return periodUsage
		}
	default:
		log.Printf("Storage failure handling %v: %v", kind, err)
		return msgStorage
	}
}
