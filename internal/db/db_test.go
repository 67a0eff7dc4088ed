package db_test

import (
	"context"
	"database/sql"

	"chainboard/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID     string `gorm:"primaryKey"`
	Name   string
	Points int
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
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

	Describe("InsertOne", func() {
		When("the record is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "tests" .*$`).
					WithArgs("t-1", "Alice", 0).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should insert the record", func() {
				err := testDB.InsertOne(context.Background(), &Test{ID: "t-1", Name: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the primary key already exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "tests" .*$`).
					WillReturnError(gorm.ErrDuplicatedKey)
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.InsertOne(context.Background(), &Test{ID: "t-1", Name: "Alice"})
				Expect(err).To(Equal(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE name = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "points"}).
						AddRow("t-1", "Alice", 5))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "name", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("t-1"))
				Expect(result.Points).To(Equal(5))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE name = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "name", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ListOrdered", func() {
		When("a condition and limit are given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE points > \$1 ORDER BY points DESC LIMIT \$2.*`).
					WithArgs(0, 2).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "points"}).
						AddRow("t-2", "Bob", 10).
						AddRow("t-1", "Alice", 5))
			})

			It("should return the ordered rows", func() {
				var results []Test
				err := testDB.ListOrdered(context.Background(), &results, "points DESC", 2, "points > ?", 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Name).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no condition is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" ORDER BY points DESC.*`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "points"}))
			})

			It("should query the whole table", func() {
				var results []Test
				err := testDB.ListOrdered(context.Background(), &results, "points DESC", 0, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(BeEmpty())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateWhere", func() {
		When("rows match the condition", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "points"=\$1 WHERE name = \$2$`).
					WithArgs(10, "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report the affected row count", func() {
				rows, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"points": 10}, "name = ?", "Alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no rows match the condition", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "points"=\$1 WHERE name = \$2$`).
					WithArgs(10, "Ghost").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should report zero without an error", func() {
				rows, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"points": 10}, "name = ?", "Ghost")
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "tests" WHERE name = \$1$`).
				WithArgs("Alice").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete matching rows", func() {
			err := testDB.DeleteBy(context.Background(), &Test{}, "name", "Alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
