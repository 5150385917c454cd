package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/customer-search/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const isoDateLayout = "2006-01-02"

// CustomerRepository is read side of customers directory.
// FindByID returns nil customer when it doesn't exist.
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
}

// CustomerSeeder stores customer, replacing existing one with the same id
type CustomerSeeder interface {
	Upsert(context.Context, *model.Customer) error
}

type fileCustomerRepository struct {
	customers []*model.Customer
}

// NewFileCustomerRepository loads customers from JSON seed file once
func NewFileCustomerRepository(path string) (CustomerRepository, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customers seed file - %w", err)
	}

	customers := make([]*model.Customer, 0)
	if err := json.Unmarshal(b, &customers); err != nil {
		return nil, fmt.Errorf("failed to parse customers seed file - %w", err)
	}
	return &fileCustomerRepository{customers: customers}, nil
}

func (r *fileCustomerRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fileCustomerRepository) FindAll(context.Context) ([]*model.Customer, error) {
	return r.customers, nil
}

type postgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository builds CustomerRepository on top of postgres
func NewPostgresCustomerRepository(p *pgxpool.Pool) CustomerRepository {
	return &postgresCustomerRepository{pool: p}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := `SELECT id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails
		  FROM customers WHERE id = $1`

	c, err := r.scan(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := `SELECT id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails
		  FROM customers ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) scan(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	var dob pgtype.Date
	var addresses, phones, emails pgtype.JSONB

	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &dob, &c.MaritalStatus, &c.SecureID, &addresses, &phones, &emails); err != nil {
		return nil, err
	}

	if dob.Status == pgtype.Present {
		c.DateOfBirth = dob.Time.Format(isoDateLayout)
	}

	c.Addresses = make([]model.Address, 0)
	c.Phones = make([]model.Phone, 0)
	c.Emails = make([]model.Email, 0)

	if err := assignJSONB(addresses, &c.Addresses); err != nil {
		return nil, fmt.Errorf("failed to decode addresses of customer %s - %w", c.ID, err)
	}

	if err := assignJSONB(phones, &c.Phones); err != nil {
		return nil, fmt.Errorf("failed to decode phones of customer %s - %w", c.ID, err)
	}

	if err := assignJSONB(emails, &c.Emails); err != nil {
		return nil, fmt.Errorf("failed to decode emails of customer %s - %w", c.ID, err)
	}
	return &c, nil
}

func (r *postgresCustomerRepository) Upsert(ctx context.Context, c *model.Customer) error {
	var dob pgtype.Date
	if c.DateOfBirth == "" {
		dob.Status = pgtype.Null
	} else {
		t, err := time.Parse(isoDateLayout, c.DateOfBirth)
		if err != nil {
			return fmt.Errorf("date of birth of customer %s is not ISO date - %w", c.ID, err)
		}
		dob = pgtype.Date{Time: t, Status: pgtype.Present}
	}

	var addresses, phones, emails pgtype.JSONB
	if err := addresses.Set(nonNil(c.Addresses)); err != nil {
		return err
	}
	if err := phones.Set(nonNil(c.Phones)); err != nil {
		return err
	}
	if err := emails.Set(nonNil(c.Emails)); err != nil {
		return err
	}

	q := `INSERT INTO customers(id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		  ON CONFLICT (id) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
		  date_of_birth = EXCLUDED.date_of_birth, marital_status = EXCLUDED.marital_status, secure_id = EXCLUDED.secure_id,
		  addresses = EXCLUDED.addresses, phones = EXCLUDED.phones, emails = EXCLUDED.emails`

	_, err := r.pool.Exec(ctx, q, c.ID, c.FirstName, c.LastName, &dob, string(c.MaritalStatus), c.SecureID, &addresses, &phones, &emails)
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}
	return s
}

func assignJSONB(src pgtype.JSONB, dst any) error {
	if src.Status != pgtype.Present {
		return nil
	}
	return src.AssignTo(dst)
}

type mongoCustomerRepository struct {
	client   *mongo.Client
	database string
}

// NewMongoCustomerRepository builds CustomerRepository on top of mongodb
func NewMongoCustomerRepository(client *mongo.Client, database string) CustomerRepository {
	return &mongoCustomerRepository{client: client, database: database}
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	customers := make([]*model.Customer, 0)
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) Upsert(ctx context.Context, c *model.Customer) error {
	doc := *c
	doc.Addresses = nonNil(c.Addresses)
	doc.Phones = nonNil(c.Phones)
	doc.Emails = nonNil(c.Emails)

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": c.ID}, &doc, opts)
	return err
}

func (r *mongoCustomerRepository) collection() *mongo.Collection {
	return r.client.Database(r.database).Collection("customers")
}
