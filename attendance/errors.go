package attendance

import "errors"

// กลุ่ม error หลักของระบบ — handler ใช้ errors.Is เพื่อ map เป็น HTTP code
var (
	// ErrSubjectNotFound: ไม่รู้จัก learner/coach ที่สแกนมา (หรือสถานะไม่ active)
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrRecordNotFound: ไม่มีแถว attendance ตาม id ที่อ้าง
	ErrRecordNotFound = errors.New("attendance record not found")
	// ErrValidation: ข้อมูลขาเข้าไม่ผ่าน (เช่น ข้อความชี้แจงว่าง, วันที่ผิดรูปแบบ)
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState: สั่ง action ที่สถานะปัจจุบันไม่อนุญาต (ตอบ 409 ให้ผู้ใช้เห็น)
	ErrInvalidState = errors.New("action not allowed in current status")
	// ErrStoreUnavailable: DB ล่มชั่วคราว — ส่งต่อให้ caller ลองใหม่เอง ไม่ retry ในนี้
	ErrStoreUnavailable = errors.New("attendance store unavailable")
)
