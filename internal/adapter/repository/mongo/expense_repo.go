package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iho/partyledger/internal/domain"
)

// ExpenseCollectionName is the collection holding expense documents.
const ExpenseCollectionName = "expenses"

var expensePartyFields = map[domain.PartyKind]string{
	domain.PartySupplier: "supplier_id",
	domain.PartyEmployee: "employee_id",
}

type expenseDocument struct {
	ID            string               `bson:"_id"`
	ExpenseNumber string               `bson:"expense_number"`
	Category      string               `bson:"category,omitempty"`
	Description   string               `bson:"description,omitempty"`
	SupplierID    string               `bson:"supplier_id,omitempty"`
	EmployeeID    string               `bson:"employee_id,omitempty"`
	ExpenseDate   *time.Time           `bson:"expense_date"`
	Amount        primitive.Decimal128 `bson:"amount"`
	Status        string               `bson:"status"`
	CreatedAt     time.Time            `bson:"created_at"`
}

// ExpenseRepository implements usecase.ExpenseRepository over MongoDB.
type ExpenseRepository struct {
	db *mongo.Database
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// ListByParty returns expenses tagged to the supplier or employee inside
// the window. Without date bounds undated documents are returned too.
func (r *ExpenseRepository) ListByParty(ctx context.Context, kind domain.PartyKind, partyID string, window domain.FetchWindow) ([]*domain.Expense, error) {
	field, ok := expensePartyFields[kind]
	if !ok {
		return nil, fmt.Errorf("%w: expenses are not tagged to %q", domain.ErrUnsupportedLedgerType, kind)
	}

	collection := r.db.Collection(ExpenseCollectionName)
	opts := options.Find().SetSort(bson.D{{Key: "expense_date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := collection.Find(ctx, expenseFilter(field, partyID, window), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []expenseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}

	expenses := make([]*domain.Expense, 0, len(docs))
	for _, doc := range docs {
		e, err := doc.toDomain(kind, partyID)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

func expenseFilter(field, partyID string, window domain.FetchWindow) bson.M {
	filter := bson.M{
		field:        partyID,
		"status":     bson.M{"$ne": "cancelled"},
		"created_at": bson.M{"$lte": window.AsOf},
	}

	dateBounds := bson.M{}
	if from := window.From(); from != nil {
		dateBounds["$gte"] = *from
	}
	if until := window.Until(); until != nil {
		dateBounds["$lt"] = *until
	}
	if len(dateBounds) > 0 {
		filter["expense_date"] = dateBounds
	}

	return filter
}

func (d expenseDocument) toDomain(kind domain.PartyKind, partyID string) (*domain.Expense, error) {
	amount, err := decimal.NewFromString(d.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("%w: expense %s has malformed amount %q: %v", domain.ErrInvalidSourceData, d.ID, d.Amount.String(), err)
	}

	var date *time.Time
	if d.ExpenseDate != nil {
		u := d.ExpenseDate.UTC()
		date = &u
	}

	return &domain.Expense{
		ID:            d.ID,
		ExpenseNumber: d.ExpenseNumber,
		Category:      d.Category,
		Description:   d.Description,
		PartyKind:     kind,
		PartyID:       partyID,
		ExpenseDate:   date,
		Amount:        amount,
		Status:        d.Status,
	}, nil
}

// IsRetryableError reports whether a MongoDB error is transient.
func IsRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
