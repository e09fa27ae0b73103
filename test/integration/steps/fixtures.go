package steps

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/scribe-ops/backend/internal/integration/persistence/model"
)

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Name:         "Test Operator",
		Email:        email,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashed)
}

// theUserIsLoggedIn signs an access token for the current user with the
// test secret, matching the claims the token service itself issues.
func (t *testContext) theUserIsLoggedIn() error {
	if t.currentUserID == uuid.Nil {
		if err := t.aUserExistsWithEmailAndPassword("operator@example.com", "SecurePass123!"); err != nil {
			return err
		}
	}

	var user model.UserModel
	if err := t.db.DbConn.Where("id = ?", t.currentUserID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": t.currentUserID.String(),
		"email":   user.Email,
		"iat":     jwt.NewNumericDate(now),
		"exp":     jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"jti":     uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign access token: %w", err)
	}
	t.accessToken = signed
	return nil
}

func (t *testContext) aClientExists(name, institution string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	now := time.Now().UTC()
	clientModel := &model.ClientModel{
		ID:          clientID,
		Name:        name,
		Institution: institution,
		Phone:       "+254700000000",
		Email:       "client@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(clientModel).Error
}

func (t *testContext) aProductExists(name, price string) error {
	productID := uuid.New()
	t.currentProductID = productID

	pricePerUnit, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}

	now := time.Now().UTC()
	productModel := &model.ProductModel{
		ID:           productID,
		Name:         name,
		PricePerUnit: pricePerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(productModel).Error
}

func (t *testContext) aClassExists(name string) error {
	classID := uuid.New()
	t.currentClassID = classID

	now := time.Now().UTC()
	classModel := &model.ClassModel{
		ID:        classID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(classModel).Error
}

func (t *testContext) aGenreExists(name string) error {
	genreID := uuid.New()
	t.currentGenreID = genreID

	now := time.Now().UTC()
	genreModel := &model.GenreModel{
		ID:        genreID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(genreModel).Error
}

// anOrderExists seeds an order against the current client and product with
// a controlled UTC order instant, so window-based analytics scenarios can
// place orders inside or outside specific periods.
func (t *testContext) anOrderExists(units int, cost, placedAt string) error {
	if t.currentClientID == uuid.Nil {
		if err := t.aClientExists("Default Client", "Default Institution"); err != nil {
			return err
		}
	}
	if t.currentProductID == uuid.Nil {
		if err := t.aProductExists("Default Product", strconv.Itoa(10)); err != nil {
			return err
		}
	}

	totalCost, err := decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("invalid cost %q: %w", cost, err)
	}

	instant, err := time.Parse(time.RFC3339, placedAt)
	if err != nil {
		return fmt.Errorf("invalid order instant %q: %w", placedAt, err)
	}

	orderID := uuid.New()
	t.currentOrderID = orderID

	orderModel := &model.OrderModel{
		ID:            orderID,
		ClientID:      t.currentClientID,
		ProductID:     t.currentProductID,
		Description:   "Seeded order",
		Week:          "Week 1",
		PagesOrSlides: units,
		TotalCost:     totalCost,
		CreatedAt:     instant.UTC(),
		UpdatedAt:     instant.UTC(),
	}
	return t.db.DbConn.Create(orderModel).Error
}
