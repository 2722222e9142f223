package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpack/codec"
	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/knapsack"
)

var _ = Describe("Load", func() {
	var (
		v  *viper.Viper
		fs *pflag.FlagSet
	)

	BeforeEach(func() {
		v = config.NewViper()
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		Expect(config.BindFlags(fs, v)).To(Succeed())
	})

	It("returns defaults when nothing is set", func() {
		Expect(fs.Parse(nil)).To(Succeed())

		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Input).To(BeEmpty())
		Expect(cfg.InputFormat).To(Equal(codec.Format("")))
		Expect(cfg.MaxStates).To(Equal(knapsack.DefaultMaxStates))
		Expect(cfg.Verbose).To(BeZero())
		Expect(cfg.Quiet).To(BeFalse())
	})

	It("reads flags", func() {
		Expect(fs.Parse([]string{"-i", "p.yaml", "-vvv", "--max-states=500", "--output-format=JSON", "--verify"})).To(Succeed())

		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Input).To(Equal("p.yaml"))
		Expect(cfg.Verbose).To(Equal(3))
		Expect(cfg.MaxStates).To(Equal(500))
		Expect(cfg.OutputFormat).To(Equal(codec.JSON))
		Expect(cfg.Verify).To(BeTrue())
	})

	It("reads environment variables below flags", func() {
		Expect(os.Setenv("LVPACK_MAX_STATES", "64")).To(Succeed())
		DeferCleanup(os.Unsetenv, "LVPACK_MAX_STATES")
		Expect(os.Setenv("LVPACK_METRICS", "true")).To(Succeed())
		DeferCleanup(os.Unsetenv, "LVPACK_METRICS")

		Expect(fs.Parse(nil)).To(Succeed())
		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.MaxStates).To(Equal(64))
		Expect(cfg.Metrics).To(BeTrue())

		Expect(fs.Parse([]string{"--max-states=128"})).To(Succeed())
		cfg, err = config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.MaxStates).To(Equal(128))
	})

	It("reads a config file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "lvpack.toml")
		Expect(os.WriteFile(path, []byte("max-states = 77\ninput-format = \"yaml\"\nquiet = true\n"), 0o600)).To(Succeed())

		Expect(fs.Parse(nil)).To(Succeed())
		cfg, err := config.Load(v, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.MaxStates).To(Equal(77))
		Expect(cfg.InputFormat).To(Equal(codec.YAML))
		Expect(cfg.Quiet).To(BeTrue())
	})

	It("fails on a missing config file", func() {
		Expect(fs.Parse(nil)).To(Succeed())
		_, err := config.Load(v, filepath.Join(GinkgoT().TempDir(), "absent.toml"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown format", func() {
		Expect(fs.Parse([]string{"--input-format=xml"})).To(Succeed())
		_, err := config.Load(v, "")
		Expect(err).To(MatchError(codec.ErrUnknownFormat))
	})

	It("rejects a non-positive state limit", func() {
		Expect(fs.Parse([]string{"--max-states=0"})).To(Succeed())
		_, err := config.Load(v, "")
		Expect(err).To(MatchError(ContainSubstring("max-states")))
	})
})
