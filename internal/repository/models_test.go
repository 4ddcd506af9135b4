package repository_test

import (
	"exercisetracker/internal/repository"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm/schema"
)

var _ = Describe("Models", func() {
	parse := func(model any) *schema.Schema {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	DescribeTable("client supplied strings have no length limit",
		func(model any, field string) {
			f := parse(model).LookUpField(field)
			Expect(f).NotTo(BeNil())
			Expect(string(f.DataType)).To(Equal("text"))
		},
		Entry("user username", &repository.User{}, "Username"),
		Entry("exercise username", &repository.Exercise{}, "Username"),
		Entry("exercise description", &repository.Exercise{}, "Description"),
		Entry("exercise date", &repository.Exercise{}, "Date"),
	)

	It("should order rows by a store assigned sequence", func() {
		f := parse(&repository.Exercise{}).LookUpField("Seq")
		Expect(f).NotTo(BeNil())
		Expect(f.AutoIncrement).To(BeTrue())
		Expect(f.PrimaryKey).To(BeFalse())
	})
})
