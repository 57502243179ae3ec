package planner

// ConflictKind вид конфликта размещения.
// Вызывающие стороны показывают их пользователю по-разному: прямое
// пересечение всегда фатально, конфликт cooldown разрешим каскадом.
type ConflictKind string

const (
	ConflictNone     ConflictKind = ""
	ConflictOverlap  ConflictKind = "direct_overlap"
	ConflictCooldown ConflictKind = "cooldown"
)

// Result результат проверки размещения распродажи
type Result struct {
	Valid             bool
	Conflict          ConflictKind
	ConflictingSaleID int64
	Reason            string // человекочитаемая причина отказа, пустая при Valid
}

// valid результат успешной проверки
func valid() Result {
	return Result{Valid: true}
}

// invalid результат с первым найденным нарушением
func invalid(kind ConflictKind, saleID int64, reason string) Result {
	return Result{
		Valid:             false,
		Conflict:          kind,
		ConflictingSaleID: saleID,
		Reason:            reason,
	}
}
