package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// knownTables cleardb 可以清空的表，按删除顺序排列
var knownTables = []string{"users"}

func newClearDBCommand() *cobra.Command {
	var (
		force    bool
		truncate bool
		tables   string
	)

	cmd := &cobra.Command{
		Use:   "cleardb",
		Short: "Delete all rows from the application tables",
		Example: `  # Interactive, all tables
  admin cleardb

  # Non-interactive, users only, TRUNCATE on postgres
  admin cleardb --force --truncate --tables users`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseTableNames(tables)
			if err != nil {
				return err
			}

			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), targets) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}

			db, err := openDatabase()
			if err != nil {
				return err
			}
			return clearTables(db, cmd.OutOrStdout(), targets, truncate)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Use TRUNCATE (faster, resets identities; postgres/mysql only)")
	cmd.Flags().StringVar(&tables, "tables", "", "Comma-separated tables to clear (default: all)")

	return cmd
}

// parseTableNames 解析 --tables 参数，留空表示所有表
// 表名会拼进原生 SQL，未知表名直接拒绝
func parseTableNames(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return knownTables, nil
	}

	var tables []string
	for _, p := range strings.Split(input, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !isKnownTable(p) {
			return nil, fmt.Errorf("unknown table %q (known: %s)", p, strings.Join(knownTables, ", "))
		}
		tables = append(tables, p)
	}
	return tables, nil
}

func isKnownTable(name string) bool {
	for _, t := range knownTables {
		if t == name {
			return true
		}
	}
	return false
}

func confirm(in io.Reader, out io.Writer, tables []string) bool {
	fmt.Fprintln(out, "WARNING: this deletes all rows in:")
	for _, t := range tables {
		fmt.Fprintf(out, "   - %s\n", t)
	}
	fmt.Fprint(out, "\nContinue? (yes/no): ")

	input, _ := bufio.NewReader(in).ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "yes" || input == "y"
}

// clearTables 逐表清空；SQLite 没有 TRUNCATE，始终用 DELETE
func clearTables(db *gorm.DB, out io.Writer, tables []string, truncate bool) error {
	dialect := db.Dialector.Name()

	var failed []string
	for _, table := range tables {
		var stmt string
		switch {
		case truncate && dialect == "postgres":
			stmt = fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		case truncate && dialect == "mysql":
			stmt = fmt.Sprintf("TRUNCATE TABLE %s", table)
		default:
			stmt = fmt.Sprintf("DELETE FROM %s", table)
		}

		if err := db.Exec(stmt).Error; err != nil {
			fmt.Fprintf(out, "failed to clear %s: %v\n", table, err)
			failed = append(failed, table)
			continue
		}
		fmt.Fprintf(out, "cleared %s\n", table)
	}

	if len(failed) > 0 {
		return fmt.Errorf("could not clear: %s", strings.Join(failed, ", "))
	}
	return nil
}
