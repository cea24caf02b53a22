package services

import (
	"fmt"

	"github.com/shivas758/yamkar4.1-sub001/models"

	"gorm.io/gorm"
)

type notifierDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notify notifierDeps

func InitNotifier(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notify = notifierDeps{db: db, rt: rt, ps: ps}
}

// NotifyManager records a notification for the employee's direct
// manager and pushes it to the manager's devices. Safe to call anywhere;
// a no-op when the notifier is not initialized or the employee has no
// manager.
func NotifyManager(employeeID uint, kind, message string) {
	if _notify.db == nil {
		return // not initialized
	}

	var employee models.User
	if err := _notify.db.First(&employee, employeeID).Error; err != nil || employee.ManagerID == nil {
		return
	}
	managerID := *employee.ManagerID

	n := &models.Notification{UserID: managerID, Kind: kind, Message: fmt.Sprintf("%s %s", employee.FullName, message)}
	_ = _notify.db.Create(n).Error

	if _notify.rt != nil {
		_notify.rt.Broadcast(managerID, map[string]any{
			"kind":         kind,
			"notification": n,
		})
	}
	if _notify.ps != nil {
		_notify.ps.PushToUser(managerID, "Attendance", n.Message, map[string]string{
			"kind": kind, "employeeId": fmt.Sprintf("%d", employeeID),
		})
	}
}

// BroadcastPing streams a location capture to the employee's manager
// dashboard, if one is connected.
func BroadcastPing(ping *models.LocationPing) {
	if _notify.db == nil || _notify.rt == nil {
		return
	}

	var employee models.User
	if err := _notify.db.First(&employee, ping.UserID).Error; err != nil || employee.ManagerID == nil {
		return
	}

	_notify.rt.Broadcast(*employee.ManagerID, map[string]any{
		"kind": "location.ping",
		"ping": ping,
	})
}
