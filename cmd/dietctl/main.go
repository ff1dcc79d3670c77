package main

import (
	"fmt"
	"os"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Intake{},
		&models.Meal{},
		&models.MealItem{},
		&models.GroceryItem{},
		&models.WorkoutSession{},
		&models.WorkoutExercise{},
		&models.WeightLog{},
		&models.GlucoseLog{},
		&models.MealCheck{},
		&models.Alert{},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to drop tables without --yes")
			}
			config.InitDB()
			if err := config.DB.Migrator().DropTable(allModels()...); err != nil {
				return err
			}
			if err := config.Migrate(config.DB); err != nil {
				return err
			}
			fmt.Println("database reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive reset")
	return cmd
}

func newFlushUsersCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "flush-users",
		Short: "Delete all users and everything they own",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to flush users without --yes")
			}
			config.InitDB()
			return config.DB.Transaction(func(tx *gorm.DB) error {
				owned := []interface{}{
					&models.MealItem{},
					&models.Meal{},
					&models.GroceryItem{},
					&models.WorkoutExercise{},
					&models.WorkoutSession{},
					&models.WeightLog{},
					&models.GlucoseLog{},
					&models.MealCheck{},
					&models.Alert{},
					&models.Intake{},
					&models.User{},
				}
				for _, m := range owned {
					if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
						Unscoped().Delete(m).Error; err != nil {
						return err
					}
				}
				fmt.Println("users flushed")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive flush")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "dietctl",
		Short: "Operational helpers for the diet-app database",
	}
	root.AddCommand(newResetCmd(), newFlushUsersCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
