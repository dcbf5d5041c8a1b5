package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/tossicat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var postfixCmd = &cobra.Command{
	Use:     "postfix WORD PARTICLE",
	Short:   "Print the word followed by the particle that fits it",
	Example: "  tossicat postfix 집 으로    # 집으로",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolve(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0]+r.Form)
		return nil
	},
}

var pickCmd = &cobra.Command{
	Use:     "pick WORD PARTICLE",
	Short:   "Print only the particle that fits the word",
	Example: "  tossicat pick 토씨캣 는    # 은",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolve(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Form)
		return nil
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform WORD PARTICLE",
	Short: "Print the word and its particle separated by a tab",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, form, err := engine.Transform(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", word, form)
		return nil
	},
}

var sentenceCmd = &cobra.Command{
	Use:     "sentence TEMPLATE...",
	Short:   "Rewrite every {word, particle} placeholder in a sentence",
	Example: `  tossicat sentence "{커피, 을} 좋아해요"    # 커피를 좋아해요`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template := strings.Join(args, " ")
		if debug {
			ts, err := tossicat.Scan(template)
			if err != nil {
				return err
			}
			dump(ts)
		}
		s, err := engine.ModifySentence(template)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify WORD PARTICLE",
	Short: "Check that a word and particle can be combined",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := engine.Verify(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a short demonstration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		name1, name2 := "한국어", "토씨캣"

		s1, err := engine.Postfix(name1, "은")
		if err != nil {
			return err
		}
		s2, err := engine.Postfix(name2, "은")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "안녕하세요, %s 바로 앞 글자에 따라 조사가 변합니다.\n", s1)
		fmt.Fprintf(out, "따라서 %s 조사를 알맞게 변경해줍니다.\n", s2)

		s, err := engine.ModifySentence("{한국어, 은} 정말 좋은 언어입니다. {커피, 을} 정말 좋아해요")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)

		word, form, err := engine.Transform(name2, "(은)는")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "<strong>%s</strong>%s 사용하기 정말 편해요.\n", word, form)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		if c.MySQL != nil {
			masked := *c.MySQL
			masked.Password = "********"
			c.MySQL = &masked
		}
		data, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// resolve dumps the decomposition and resolution under --debug.
func resolve(word, particle string) (tossicat.Resolution, error) {
	r, err := engine.Resolve(word, particle)
	if err != nil {
		logger.Debug("resolve failed", zap.String("word", word), zap.String("particle", particle), zap.Error(err))
		return tossicat.Resolution{}, err
	}
	if debug {
		dec, err := engine.Decompose(word)
		if err != nil {
			return tossicat.Resolution{}, err
		}
		dump(dec, r)
	}
	return r, nil
}

func dump(v ...interface{}) {
	_, _ = pp.Fprintln(os.Stderr, v...)
}
