package config_test

import (
	"os"
	"time"

	"exercisetracker/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewAppConfig", func() {
	var (
		cfg config.App
		err error
	)

	JustBeforeEach(func() {
		cfg, err = config.NewAppConfig()
	})

	When("only the connection url is set", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://tracker@localhost:5432/tracker")
			for _, key := range []string{"PORT", "LOG_LEVEL", "DB_LOG_LEVEL", "STATIC_DIR", "VIEWS_DIR", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT"} {
				GinkgoT().Setenv(key, "")
				Expect(os.Unsetenv(key)).To(Succeed())
			}
		})

		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.DBConnectionURL).To(Equal("postgres://tracker@localhost:5432/tracker"))
			Expect(cfg.Port).To(Equal("3000"))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.DBLogLevel).To(Equal("warn"))
			Expect(cfg.StaticDir).To(Equal("public"))
			Expect(cfg.ViewsDir).To(Equal("views"))
			Expect(cfg.CORSAllowedOrigins).To(Equal([]string{"*"}))
			Expect(cfg.ShutdownTimeout).To(Equal(10 * time.Second))
		})
	})

	When("values are overridden", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://tracker@db:5432/tracker")
			GinkgoT().Setenv("PORT", "8081")
			GinkgoT().Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
			GinkgoT().Setenv("SHUTDOWN_TIMEOUT", "3s")
		})

		It("should read them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8081"))
			Expect(cfg.CORSAllowedOrigins).To(Equal([]string{"http://a.test", "http://b.test"}))
			Expect(cfg.ShutdownTimeout).To(Equal(3 * time.Second))
		})
	})

	When("the connection url is missing", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("DB_CONNECTION_URL", "")
			Expect(os.Unsetenv("DB_CONNECTION_URL")).To(Succeed())
		})

		It("should return an error", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("DB_CONNECTION_URL"))
		})
	})
})
