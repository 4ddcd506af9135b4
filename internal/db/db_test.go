package db_test

import (
	"context"
	"database/sql"
	"exercisetracker/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should save the record", func() {
				err := testDB.Insert(ctx, &Test{ID: 1, Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				err := testDB.Insert(ctx, &Test{ID: 1, Username: "Alice"})
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs(1, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "id", 1, &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs(42, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "id", 42, &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1.*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "id", 7, &result)
				Expect(err).To(MatchError(ContainSubstring(`getting record by "id"`)))
				Expect(err).NotTo(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("GetAll", func() {
		When("records exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" ORDER BY id`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Bob"))
			})

			It("should return them in order", func() {
				var results []Test
				err := testDB.GetAll(ctx, "id", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAll(ctx, "id", &results)
				Expect(err).To(MatchError(ContainSubstring("getting all records")))
			})
		})
	})

	Describe("Find", func() {
		When("conditions, projection and limit are set", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT "username" FROM "tests" WHERE username >= \$1 AND username <= \$2 ORDER BY id LIMIT \$3`).
					WithArgs("A", "C", 1).
					WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("Alice"))
			})

			It("should apply every part of the query", func() {
				var results []Test
				err := testDB.Find(ctx, db.Query{
					Columns: []string{"username"},
					Conditions: []db.Condition{
						{Column: "username", Operator: ">=", Value: "A"},
						{Column: "username", Operator: "<=", Value: "C"},
					},
					OrderBy: "id",
					Limit:   1,
				}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("limit is zero", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should not limit the result", func() {
				var results []Test
				err := testDB.Find(ctx, db.Query{
					Conditions: []db.Condition{{Column: "username", Operator: "=", Value: "Alice"}},
				}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT .* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.Find(ctx, db.Query{}, &results)
				Expect(err).To(MatchError(ContainSubstring("finding records")))
			})
		})
	})

	Describe("DeleteAll", func() {
		When("rows are deleted", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests"$`).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
			})

			It("should report the number of removed rows", func() {
				count, err := testDB.DeleteAll(ctx, &Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(3)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests"$`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				count, err := testDB.DeleteAll(ctx, &Test{})
				Expect(err).To(MatchError(ContainSubstring("deleting all records")))
				Expect(count).To(BeZero())
			})
		})
	})
})
