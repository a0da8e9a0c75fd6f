package errors

// Kind вид сбоя слоя хранения. Перечисление закрытое: новый вид
// должен получить код в Kind.Code, иначе линтер exhaustive не пропустит.
type Kind int

const (
	KindDatabase Kind = iota
	KindNotFound
	KindSerialization
	KindDeserialization
	KindQueryBuilder
	KindRollbackTransaction
	KindAlreadyInTransaction
	KindInvalidString
	KindOther
)

// Code возвращает код ошибки для вида сбоя
func (k Kind) Code() string {
	//exhaustive:enforce
	switch k {
	case KindDatabase:
		return "database-error"
	case KindNotFound:
		return CodeObjectNotFound
	case KindSerialization:
		return "serialization-error"
	case KindDeserialization:
		return "deserialization-error"
	case KindQueryBuilder:
		return "query-builder-error"
	case KindRollbackTransaction:
		return "rollback-transaction"
	case KindAlreadyInTransaction:
		return "already-in-transaction"
	case KindInvalidString:
		return "invalid-string"
	case KindOther:
		return "non-exhaustive"
	}
	return "non-exhaustive"
}

func (k Kind) String() string {
	//exhaustive:enforce
	switch k {
	case KindDatabase:
		return "DatabaseError"
	case KindNotFound:
		return "NotFound"
	case KindSerialization:
		return "SerializationError"
	case KindDeserialization:
		return "DeserializationError"
	case KindQueryBuilder:
		return "QueryBuilderError"
	case KindRollbackTransaction:
		return "RollbackTransaction"
	case KindAlreadyInTransaction:
		return "AlreadyInTransaction"
	case KindInvalidString:
		return "InvalidString"
	case KindOther:
		return "Other"
	}
	return "Other"
}

// PersistenceError ошибка слоя хранения с классифицированным видом
type PersistenceError struct {
	Kind Kind
	Op   string
	// Duplicate выставляется при нарушении уникального ограничения
	Duplicate bool
	Err       error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать с ErrNotFound и ErrDuplication через errors.Is
func (e *PersistenceError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrDuplication:
		return e.Duplicate
	}
	return false
}
