package services

import (
	"time"

	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists a safety advisory and pushes it to the user's
// open sockets. Safe to call before InitAlertDeps (no-op).
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if err := _alert.db.Create(a).Error; err != nil {
		utils.Log.Warn("alert persist failed", "err", err)
		return
	}

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, Event{Kind: "alert.created", Data: a})
	}
}

// EmitEvent pushes a non-persisted realtime event (plan generated,
// groceries synced). No-op before InitAlertDeps.
func EmitEvent(userID uint, ev Event) {
	if _alert.rt == nil {
		return
	}
	_alert.rt.Broadcast(userID, ev)
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if _alert.db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var alerts []models.Alert
	err := _alert.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}
