package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"heim/internal/adapters/out/postgres/customerrepo"
	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CustomerRepositoryIntegrationTestSuite verifies customer persistence
// against a real PostgreSQL instance, including the address collection
// and the unique email guarantee.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&customerrepo.CustomerDTO{}, &customerrepo.AddressDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers CASCADE").Error)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestCustomer("jane.doe@example.com")
	suite.addTestAddress(aggregate, true)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))
	suite.Equal("jane.doe@example.com", loaded.Email().Value())
	suite.Equal("Jane Doe", loaded.Name().FullName())
	suite.Require().Len(loaded.Addresses(), 1)
	suite.True(loaded.Addresses()[0].IsPrimary())
	suite.Equal("Springfield", loaded.Addresses()[0].City())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.createTestCustomer("taken@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestCustomer("taken@example.com")

	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_ReplacesAddressCollection() {
	ctx := context.Background()
	aggregate := suite.createTestCustomer("jane.doe@example.com")
	suite.addTestAddress(aggregate, true)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	work, err := customer.NewAddress(kernel.NewUUID(), "12 Office Park", "",
		"Shelbyville", "IL", "62565", "USA", customer.AddressTypeWork, true)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddAddress(work))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Addresses(), 2)
	primary := loaded.PrimaryAddress()
	suite.Require().NotNil(primary)
	suite.Equal("Shelbyville", primary.City())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_ClearsPhone() {
	ctx := context.Background()
	phone, err := kernel.NewPhoneNumber("+1 (555) 123-4567")
	suite.Require().NoError(err)
	name, err := kernel.NewPersonName("Jane", "Doe")
	suite.Require().NoError(err)
	email, err := kernel.NewEmail("jane.doe@example.com")
	suite.Require().NoError(err)
	aggregate, err := customer.NewCustomer(
		kernel.GenerateCustomerID(time.Now()), name, email, &phone)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	changed, err := aggregate.ChangePhone(nil)
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.Phone())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestDelete_RemovesCustomerAndAddresses() {
	ctx := context.Background()
	aggregate := suite.createTestCustomer("jane.doe@example.com")
	suite.addTestAddress(aggregate, true)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var addressCount int64
	suite.Require().NoError(suite.db.Model(&customerrepo.AddressDTO{}).
		Count(&addressCount).Error)
	suite.Zero(addressCount)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_OrderedBySurnamesThenGivenNames() {
	ctx := context.Background()
	suite.addCustomerNamed("Charlie", "Adams", "charlie@example.com")
	suite.addCustomerNamed("Alice", "Baker", "alice@example.com")
	suite.addCustomerNamed("Bob", "Adams", "bob@example.com")

	customers, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(customers, 3)
	suite.Equal("Bob Adams", customers[0].Name().FullName())
	suite.Equal("Charlie Adams", customers[1].Name().FullName())
	suite.Equal("Alice Baker", customers[2].Name().FullName())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestSearch_MatchesNameAndEmailCaseInsensitively() {
	ctx := context.Background()
	suite.addCustomerNamed("Charlie", "Adams", "charlie@example.com")
	suite.addCustomerNamed("Alice", "Baker", "alice@other.example.com")

	byName, err := suite.repository.Search(ctx, "ADAMS")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal("Charlie Adams", byName[0].Name().FullName())

	byEmail, err := suite.repository.Search(ctx, "other.example")
	suite.Require().NoError(err)
	suite.Require().Len(byEmail, 1)
	suite.Equal("Alice Baker", byEmail[0].Name().FullName())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail_NotFound() {
	email, err := kernel.NewEmail("nobody@example.com")
	suite.Require().NoError(err)

	_, err = suite.repository.GetByEmail(context.Background(), email)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer(emailValue string) *customer.Customer {
	name, err := kernel.NewPersonName("Jane", "Doe")
	suite.Require().NoError(err)
	email, err := kernel.NewEmail(emailValue)
	suite.Require().NoError(err)

	aggregate, err := customer.NewCustomer(
		kernel.GenerateCustomerID(time.Now()), name, email, nil)
	suite.Require().NoError(err)

	// Consecutive calls within the same millisecond would collide on the
	// generated identifier.
	time.Sleep(2 * time.Millisecond)
	return aggregate
}

func (suite *CustomerRepositoryIntegrationTestSuite) addCustomerNamed(givenNames, surnames, emailValue string) {
	name, err := kernel.NewPersonName(givenNames, surnames)
	suite.Require().NoError(err)
	email, err := kernel.NewEmail(emailValue)
	suite.Require().NoError(err)

	aggregate, err := customer.NewCustomer(
		kernel.GenerateCustomerID(time.Now()), name, email, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	time.Sleep(2 * time.Millisecond)
}

func (suite *CustomerRepositoryIntegrationTestSuite) addTestAddress(aggregate *customer.Customer, primary bool) {
	address, err := customer.NewAddress(kernel.NewUUID(), "742 Evergreen Terrace",
		"", "Springfield", "IL", "62704", "USA", customer.AddressTypeHome, primary)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddAddress(address))
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
